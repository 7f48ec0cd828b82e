package render

type settingsDocument struct {
	AllowBreakpointsEverywhere bool `json:"debug.allowBreakpointsEverywhere"`
	FormatOnSave               bool `json:"editor.formatOnSave"`
	InsertSpaces               bool `json:"editor.insertSpaces"`
	TabSize                    int  `json:"editor.tabSize"`
	BuildOnSave                bool `json:"zig.buildOnSave"`
}

// Settings renders the editor settings document. The content is constant:
// breakpoints are allowed in build.zig files, build-on-save is off and the
// formatting preferences match zig fmt output.
func Settings() ([]byte, error) {
	return marshal(settingsDocument{
		AllowBreakpointsEverywhere: true,
		FormatOnSave:               true,
		InsertSpaces:               true,
		TabSize:                    4,
		BuildOnSave:                false,
	})
}
