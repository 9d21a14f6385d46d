package backend

import "strings"

// LaunchArgs は起動引数をオプションとデータファイルに振り分けた結果
type LaunchArgs struct {
	Options   []string // "-" で始まるトークン
	DataFiles []string // それ以外のトークン
}

// ParseLaunchArgs は起動引数を振り分けます
// 実行ファイル名は含めずに渡してください。各グループ内の順序は保持されます
func ParseLaunchArgs(args []string) LaunchArgs {
	parsed := LaunchArgs{
		Options:   []string{},
		DataFiles: []string{},
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			parsed.Options = append(parsed.Options, arg)
		} else {
			parsed.DataFiles = append(parsed.DataFiles, arg)
		}
	}
	return parsed
}
