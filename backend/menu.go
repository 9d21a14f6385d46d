package backend

import (
	"errors"
	"fmt"
)

// ErrInvalidMenu はメニュー記述の構造が不正な場合のエラー
var ErrInvalidMenu = errors.New("invalid menu description")

// メニュー構築時のプラットフォーム
type Platform int

const (
	PlatformOther Platform = iota
	PlatformMac
)

func (p Platform) String() string {
	if p == PlatformMac {
		return "mac"
	}
	return "other"
}

// メニュー項目の種類
type ItemKind int

const (
	ItemCommand ItemKind = iota
	ItemSeparator
	ItemSubmenu
)

// CommandID はシェル側で処理するメニューコマンドの識別子
type CommandID string

const (
	CmdOpenDataFile        CommandID = "open-data-file"
	CmdCloseDataFile       CommandID = "close-data-file"
	CmdShowLayers          CommandID = EventShowLayersWindow
	CmdShowLayerProperties CommandID = EventShowLayerPropertiesWindow
	CmdShowDataFiles       CommandID = EventShowDataFilesWindow
	CmdShowFileInfo        CommandID = EventShowFileInfoWindow
	CmdShowVariableInfo    CommandID = EventShowVariableInfoWindow
	CmdShowColorMaps       CommandID = EventShowColorMapsWindow
	CmdShowTimeSeriesPlot  CommandID = EventShowTimeSeriesPlotWindow
	CmdAddPOI              CommandID = EventAddPointOfInterest
	CmdRemovePOI           CommandID = EventRemovePointOfInterest
	CmdRemoveAllPOIs       CommandID = EventRemoveAllPointsOfInterest
	CmdReload              CommandID = "reload"
	CmdToggleFullScreen    CommandID = "toggle-full-screen"
	CmdPreferences         CommandID = "preferences"
	CmdQuit                CommandID = "quit"
	CmdAbout               CommandID = "about"
	CmdOpenHelpSite        CommandID = "open-help-site"
)

// Role はツールキット側の標準動作に委ねるメニュー項目の役割
type Role string

const (
	RoleUndo      Role = "undo"
	RoleRedo      Role = "redo"
	RoleCut       Role = "cut"
	RoleCopy      Role = "copy"
	RolePaste     Role = "paste"
	RoleSelectAll Role = "selectall"
	RoleMinimize  Role = "minimize"
	RoleClose     Role = "close"
	RoleFront     Role = "front"
	RoleAbout     Role = "about"
	RoleHide      Role = "hide"
)

// SectionRole はトップレベルセクションの役割（ネイティブ置き換えの判定に使う）
type SectionRole string

const (
	SectionRoleApp  SectionRole = "app"
	SectionRoleEdit SectionRole = "edit"
)

// メニュー項目
type Item struct {
	Kind        ItemKind
	Label       string
	Accelerator string    // 例: "CmdOrCtrl+Z", "Ctrl+Command+F3", "F11"
	Command     CommandID // Role と排他
	Role        Role      // Command と排他
	Submenu     []Item
}

// トップレベルのメニューセクション
type Section struct {
	Label string
	Role  SectionRole
	Items []Item
}

// MenuDescription はネイティブメニューバーの宣言的な記述
type MenuDescription struct {
	Platform Platform
	Sections []Section
}

func command(label, accelerator string, cmd CommandID) Item {
	return Item{Kind: ItemCommand, Label: label, Accelerator: accelerator, Command: cmd}
}

func roleItem(label, accelerator string, role Role) Item {
	return Item{Kind: ItemCommand, Label: label, Accelerator: accelerator, Role: role}
}

func separator() Item {
	return Item{Kind: ItemSeparator}
}

// BuildMenu はプラットフォームに応じたメニュー記述を組み立てます
// 副作用はなく、失敗することもありません
func BuildMenu(platform Platform, appName string) *MenuDescription {
	// macOS とそれ以外でショートカットを切り替える
	ifMacOrElse := func(mac, other string) string {
		if platform == PlatformMac {
			return mac
		}
		return other
	}

	file := Section{
		Label: "File",
		Items: []Item{
			command("Open Data File", "", CmdOpenDataFile),
			command("Close Data File", "", CmdCloseDataFile),
		},
	}

	edit := Section{
		Label: "Edit",
		Role:  SectionRoleEdit,
		Items: []Item{
			roleItem("Undo", "CmdOrCtrl+Z", RoleUndo),
			roleItem("Redo", "Shift+CmdOrCtrl+Z", RoleRedo),
			separator(),
			roleItem("Cut", "CmdOrCtrl+X", RoleCut),
			roleItem("Copy", "CmdOrCtrl+C", RoleCopy),
			roleItem("Paste", "CmdOrCtrl+V", RolePaste),
			roleItem("Select All", "CmdOrCtrl+A", RoleSelectAll),
		},
	}

	view := Section{
		Label: "View",
		Items: []Item{
			command("Layers", ifMacOrElse("Ctrl+Command+F3", "F3"), CmdShowLayers),
			command("Layer Properties", ifMacOrElse("Ctrl+Command+F4", "F4"), CmdShowLayerProperties),
			command("Data Files", "", CmdShowDataFiles),
			command("Data File Info", "", CmdShowFileInfo),
			command("Variable Info", "", CmdShowVariableInfo),
			command("Color Maps", "", CmdShowColorMaps),
			command("Time-Series Plot", "", CmdShowTimeSeriesPlot),
			separator(),
			command("Reload", "CmdOrCtrl+R", CmdReload),
			command("Toggle Full Screen", ifMacOrElse("Ctrl+Command+F", "F11"), CmdToggleFullScreen),
		},
	}

	tools := Section{
		Label: "Tools",
		Items: []Item{
			command("Add POI", "CmdOrCtrl+P", CmdAddPOI),
			command("Remove POI", "", CmdRemovePOI),
			command("Remove All POIs", "", CmdRemoveAllPOIs),
		},
	}

	window := Section{
		Label: "Window",
		Items: []Item{
			roleItem("Minimize", "CmdOrCtrl+M", RoleMinimize),
			roleItem("Close", "CmdOrCtrl+W", RoleClose),
		},
	}

	help := Section{
		Label: "Help",
		Items: []Item{
			command("ESA Climate Change Initiative", "", CmdOpenHelpSite),
		},
	}

	if platform == PlatformMac {
		window.Items = append(window.Items,
			separator(),
			roleItem("Bring All to Front", "", RoleFront),
		)

		app := Section{
			Label: appName,
			Role:  SectionRoleApp,
			Items: []Item{
				roleItem("About "+appName, "", RoleAbout),
				separator(),
				command("Preferences...", "Command+,", CmdPreferences),
				separator(),
				roleItem("Hide "+appName, "Command+H", RoleHide),
				separator(),
				command("Quit "+appName, "Command+Q", CmdQuit),
			},
		}

		return &MenuDescription{
			Platform: platform,
			Sections: []Section{app, file, edit, view, tools, window, help},
		}
	}

	file.Items = append(file.Items,
		separator(),
		command("Preferences...", "", CmdPreferences),
		separator(),
		command("Exit", "", CmdQuit),
	)
	help.Items = append(help.Items,
		separator(),
		command("About...", "", CmdAbout),
	)

	return &MenuDescription{
		Platform: platform,
		Sections: []Section{file, edit, view, tools, window, help},
	}
}

// Section はラベルが一致する最初のセクションを返します
func (m *MenuDescription) Section(label string) (Section, bool) {
	for _, s := range m.Sections {
		if s.Label == label {
			return s, true
		}
	}
	return Section{}, false
}

// Validate はコマンド項目が Command と Role のどちらか一方だけを持つことを確認します
// アプリケーションメニューは macOS の先頭セクションにだけ置けます
func (m *MenuDescription) Validate() error {
	for i, s := range m.Sections {
		if s.Role == SectionRoleApp && (m.Platform != PlatformMac || i != 0) {
			return fmt.Errorf("%w: application section %q must be the first section on %s", ErrInvalidMenu, s.Label, PlatformMac)
		}
		if err := validateItems(s.Label, s.Items); err != nil {
			return err
		}
	}
	return nil
}

func validateItems(path string, items []Item) error {
	for i, item := range items {
		switch item.Kind {
		case ItemCommand:
			hasCommand := item.Command != ""
			hasRole := item.Role != ""
			if hasCommand == hasRole {
				return fmt.Errorf("%w: %s[%d] %q must have exactly one of command or role", ErrInvalidMenu, path, i, item.Label)
			}
		case ItemSubmenu:
			if err := validateItems(path+"/"+item.Label, item.Submenu); err != nil {
				return err
			}
		}
	}
	return nil
}
