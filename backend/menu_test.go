package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(items []Item) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind == ItemSeparator {
			result = append(result, "-")
			continue
		}
		result = append(result, item.Label)
	}
	return result
}

func sectionLabels(desc *MenuDescription) []string {
	result := make([]string, 0, len(desc.Sections))
	for _, s := range desc.Sections {
		result = append(result, s.Label)
	}
	return result
}

func findItem(t *testing.T, desc *MenuDescription, section, label string) Item {
	t.Helper()
	s, ok := desc.Section(section)
	require.True(t, ok, "section %s", section)
	for _, item := range s.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("item %s/%s not found", section, label)
	return Item{}
}

func TestBuildMenu_FileSectionKeepsBaseItems(t *testing.T) {
	for _, platform := range []Platform{PlatformMac, PlatformOther} {
		t.Run(platform.String(), func(t *testing.T) {
			desc := BuildMenu(platform, "CCI Toolbox")
			file, ok := desc.Section("File")
			require.True(t, ok)
			require.GreaterOrEqual(t, len(file.Items), 2)
			assert.Equal(t, []string{"Open Data File", "Close Data File"}, labels(file.Items[:2]))
			assert.NoError(t, desc.Validate())
		})
	}
}

func TestBuildMenu_Mac(t *testing.T) {
	desc := BuildMenu(PlatformMac, "CCI Toolbox")

	assert.Equal(t, PlatformMac, desc.Platform)
	assert.Equal(t, []string{"CCI Toolbox", "File", "Edit", "View", "Tools", "Window", "Help"}, sectionLabels(desc))

	app := desc.Sections[0]
	assert.Equal(t, SectionRoleApp, app.Role)
	assert.Equal(t, []string{
		"About CCI Toolbox", "-", "Preferences...", "-", "Hide CCI Toolbox", "-", "Quit CCI Toolbox",
	}, labels(app.Items))

	window, _ := desc.Section("Window")
	n := len(window.Items)
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, ItemSeparator, window.Items[n-2].Kind)
	assert.Equal(t, "Bring All to Front", window.Items[n-1].Label)
	assert.Equal(t, RoleFront, window.Items[n-1].Role)

	file, _ := desc.Section("File")
	assert.Equal(t, []string{"Open Data File", "Close Data File"}, labels(file.Items))
	help, _ := desc.Section("Help")
	assert.Equal(t, []string{"ESA Climate Change Initiative"}, labels(help.Items))
}

func TestBuildMenu_Other(t *testing.T) {
	desc := BuildMenu(PlatformOther, "CCI Toolbox")

	assert.Equal(t, []string{"File", "Edit", "View", "Tools", "Window", "Help"}, sectionLabels(desc))

	file, _ := desc.Section("File")
	assert.Equal(t, []string{"Open Data File", "Close Data File", "-", "Preferences...", "-", "Exit"}, labels(file.Items))
	assert.Equal(t, CmdQuit, file.Items[5].Command)

	help, _ := desc.Section("Help")
	assert.Equal(t, []string{"ESA Climate Change Initiative", "-", "About..."}, labels(help.Items))

	window, _ := desc.Section("Window")
	assert.Equal(t, []string{"Minimize", "Close"}, labels(window.Items))
}

func TestBuildMenu_PlatformAccelerators(t *testing.T) {
	tests := []struct {
		section string
		label   string
		mac     string
		other   string
	}{
		{section: "View", label: "Layers", mac: "Ctrl+Command+F3", other: "F3"},
		{section: "View", label: "Layer Properties", mac: "Ctrl+Command+F4", other: "F4"},
		{section: "View", label: "Toggle Full Screen", mac: "Ctrl+Command+F", other: "F11"},
		{section: "View", label: "Reload", mac: "CmdOrCtrl+R", other: "CmdOrCtrl+R"},
		{section: "Edit", label: "Redo", mac: "Shift+CmdOrCtrl+Z", other: "Shift+CmdOrCtrl+Z"},
		{section: "Tools", label: "Add POI", mac: "CmdOrCtrl+P", other: "CmdOrCtrl+P"},
	}

	mac := BuildMenu(PlatformMac, "CCI Toolbox")
	other := BuildMenu(PlatformOther, "CCI Toolbox")
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.mac, findItem(t, mac, tt.section, tt.label).Accelerator)
			assert.Equal(t, tt.other, findItem(t, other, tt.section, tt.label).Accelerator)
		})
	}
}

func TestBuildMenu_ViewItemsForwardToContent(t *testing.T) {
	desc := BuildMenu(PlatformOther, "CCI Toolbox")
	view, _ := desc.Section("View")

	assert.Equal(t, []string{
		"Layers", "Layer Properties", "Data Files", "Data File Info", "Variable Info",
		"Color Maps", "Time-Series Plot", "-", "Reload", "Toggle Full Screen",
	}, labels(view.Items))

	for _, item := range view.Items[:7] {
		_, forwarded := forwardedCommands[item.Command]
		assert.True(t, forwarded, item.Label)
	}
}

func TestBuildMenu_EditItemsAreRoles(t *testing.T) {
	desc := BuildMenu(PlatformOther, "CCI Toolbox")
	edit, _ := desc.Section("Edit")

	for _, item := range edit.Items {
		if item.Kind == ItemSeparator {
			continue
		}
		assert.NotEmpty(t, item.Role, item.Label)
		assert.Empty(t, item.Command, item.Label)
	}
}

func TestMenuDescription_Validate(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{name: "コマンドもロールもない", item: Item{Kind: ItemCommand, Label: "Empty"}},
		{name: "コマンドとロールの両方がある", item: Item{Kind: ItemCommand, Label: "Both", Command: CmdQuit, Role: RoleClose}},
		{name: "サブメニュー内の不正な項目", item: Item{Kind: ItemSubmenu, Label: "More", Submenu: []Item{{Kind: ItemCommand, Label: "Empty"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := &MenuDescription{Sections: []Section{{Label: "File", Items: []Item{tt.item}}}}
			err := desc.Validate()
			assert.True(t, errors.Is(err, ErrInvalidMenu), "got %v", err)
		})
	}
}

func TestMenuDescription_ValidateApplicationSection(t *testing.T) {
	appSection := Section{Label: "CCI Toolbox", Role: SectionRoleApp, Items: []Item{command("Quit", "", CmdQuit)}}
	file := Section{Label: "File", Items: []Item{command("Close", "", CmdCloseDataFile)}}

	mac := &MenuDescription{Platform: PlatformMac, Sections: []Section{appSection, file}}
	assert.NoError(t, mac.Validate())

	notFirst := &MenuDescription{Platform: PlatformMac, Sections: []Section{file, appSection}}
	assert.ErrorIs(t, notFirst.Validate(), ErrInvalidMenu)

	other := &MenuDescription{Platform: PlatformOther, Sections: []Section{appSection, file}}
	assert.ErrorIs(t, other.Validate(), ErrInvalidMenu)
}
