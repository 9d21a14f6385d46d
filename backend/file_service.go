package backend

import (
	"path/filepath"
	"strings"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

const (
	openDataFileTitle      = "Open Data File(s)"
	unsupportedFormatTitle = "Unsupported Data File Format"
	unsupportedFormatText  = "Sorry, the CCI Toolbox does not yet understand this data file type."
)

// ダイアログに表示する拡張子グループ
type ExtensionGroup struct {
	Name       string
	Extensions []string // "*" は全ファイル
}

// DataFileGroups はファイル選択ダイアログのフィルタ（表示順）
// 実際に開けるのは scientificDataExtensions に含まれる拡張子のみ
var DataFileGroups = []ExtensionGroup{
	{Name: "NetCDF Files", Extensions: []string{"nc"}},
	{Name: "HDF Files", Extensions: []string{"hdf", "h5"}},
	{Name: "ESRI Shapefiles", Extensions: []string{"shp"}},
	{Name: "GeoJSON Files", Extensions: []string{"geojson", "json"}},
	{Name: "Google Earth Files", Extensions: []string{"kmz", "kml"}},
	{Name: "GML Files", Extensions: []string{"gml"}},
	{Name: "Cesium Files", Extensions: []string{"czml"}},
	{Name: "Image Files", Extensions: []string{"jpg", "png", "gif", "tiff"}},
	{Name: "All Files", Extensions: []string{"*"}},
}

// 開くことができる科学データの拡張子（大文字小文字は区別する）
var scientificDataExtensions = map[string]bool{
	"nc":  true,
	"hdf": true,
	"h5":  true,
}

// IsScientificDataFile はパスの拡張子が nc, hdf, h5 のいずれかかを判定します
func IsScientificDataFile(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return scientificDataExtensions[ext]
}

// fileService はデータファイルの選択ダイアログを扱います
type fileService struct {
	host        Host
	preferences *Preferences
}

// NewFileService は新しいfileServiceインスタンスを作成します
func NewFileService(host Host, preferences *Preferences) *fileService {
	return &fileService{
		host:        host,
		preferences: preferences,
	}
}

// SelectDataFile はファイル選択ダイアログを表示し、選択されたファイルのパスを返します
// キャンセルされた場合は空文字を返します。選択された場合は親ディレクトリを記録します
func (s *fileService) SelectDataFile() (string, error) {
	file, err := s.host.OpenFileDialog(wailsRuntime.OpenDialogOptions{
		Title:            openDataFileTitle,
		DefaultDirectory: s.preferences.LastDir(),
		Filters:          dataFileFilters(),
	})
	if err != nil {
		return "", err
	}
	if file == "" {
		return "", nil
	}
	s.preferences.SetLastDir(filepath.Dir(file))
	return file, nil
}

// dataFileFilters はDataFileGroupsをWailsのフィルタ形式に変換する
func dataFileFilters() []wailsRuntime.FileFilter {
	filters := make([]wailsRuntime.FileFilter, 0, len(DataFileGroups))
	for _, group := range DataFileGroups {
		patterns := make([]string, 0, len(group.Extensions))
		for _, ext := range group.Extensions {
			if ext == "*" {
				patterns = append(patterns, "*.*")
			} else {
				patterns = append(patterns, "*."+ext)
			}
		}
		filters = append(filters, wailsRuntime.FileFilter{
			DisplayName: group.Name + " (" + strings.Join(patterns, ", ") + ")",
			Pattern:     strings.Join(patterns, ";"),
		})
	}
	return filters
}
