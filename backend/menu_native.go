package backend

import (
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

// MenuDispatcher はネイティブメニューのクリックを受け取るインターフェースです
type MenuDispatcher interface {
	DispatchCommand(cmd CommandID)
	DispatchRole(role Role)
}

// modifierAliases はメニュー記述の修飾キー表記とWailsの修飾キーの対応
var modifierAliases = map[string]keys.Modifier{
	"cmdorctrl":        keys.CmdOrCtrlKey,
	"commandorcontrol": keys.CmdOrCtrlKey,
	"command":          keys.CmdOrCtrlKey,
	"cmd":              keys.CmdOrCtrlKey,
	"ctrl":             keys.ControlKey,
	"control":          keys.ControlKey,
	"shift":            keys.ShiftKey,
	"alt":              keys.OptionOrAltKey,
	"option":           keys.OptionOrAltKey,
	"optionoralt":      keys.OptionOrAltKey,
}

// NewNativeMenu はメニュー記述をWailsのメニューに変換します
// macOS では Edit セクションを標準の Edit メニューに置き換え、システムのショートカットを有効にします
func NewNativeMenu(desc *MenuDescription, dispatcher MenuDispatcher) (*menu.Menu, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	root := menu.NewMenu()
	for _, section := range desc.Sections {
		if desc.Platform == PlatformMac && section.Role == SectionRoleEdit {
			root.Append(menu.EditMenu())
			continue
		}
		sub := root.AddSubmenu(section.Label)
		if err := appendNativeItems(sub, section.Label, section.Items, dispatcher); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func appendNativeItems(target *menu.Menu, path string, items []Item, dispatcher MenuDispatcher) error {
	for _, item := range items {
		switch item.Kind {
		case ItemSeparator:
			target.AddSeparator()
		case ItemSubmenu:
			sub := target.AddSubmenu(item.Label)
			if err := appendNativeItems(sub, path+"/"+item.Label, item.Submenu, dispatcher); err != nil {
				return err
			}
		case ItemCommand:
			accelerator, err := ParseAccelerator(item.Accelerator)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", path, item.Label, err)
			}
			target.AddText(item.Label, accelerator, nativeClick(item, dispatcher))
		}
	}
	return nil
}

func nativeClick(item Item, dispatcher MenuDispatcher) menu.Callback {
	if item.Role != "" {
		role := item.Role
		return func(_ *menu.CallbackData) {
			dispatcher.DispatchRole(role)
		}
	}
	cmd := item.Command
	return func(_ *menu.CallbackData) {
		dispatcher.DispatchCommand(cmd)
	}
}

// ParseAccelerator は "Shift+CmdOrCtrl+Z" 形式のショートカット表記を解析します
// 空文字の場合はショートカットなし（nil）を返します
func ParseAccelerator(s string) (*keys.Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// "+" 自体をキーにする場合に備え、末尾から切り出す
	var key string
	var rest string
	if strings.HasSuffix(s, "++") || s == "+" {
		key = "+"
		rest = strings.TrimSuffix(strings.TrimSuffix(s, "+"), "+")
	} else if idx := strings.LastIndex(s, "+"); idx >= 0 {
		key = s[idx+1:]
		rest = s[:idx]
	} else {
		key = s
	}

	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, fmt.Errorf("accelerator %q has no key", s)
	}

	var modifiers []keys.Modifier
	if rest != "" {
		for _, token := range strings.Split(rest, "+") {
			modifier, ok := modifierAliases[strings.ToLower(strings.TrimSpace(token))]
			if !ok {
				return nil, fmt.Errorf("accelerator %q has unknown modifier %q", s, token)
			}
			modifiers = append(modifiers, modifier)
		}
	}

	return &keys.Accelerator{Key: key, Modifiers: modifiers}, nil
}
