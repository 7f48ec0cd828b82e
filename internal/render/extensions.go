package render

type extensionsDocument struct {
	Recommendations []string `json:"recommendations"`
}

// Extensions renders the recommended-extensions document. The content is
// constant: the Zig language extension and the LLDB debugger extension.
func Extensions() ([]byte, error) {
	return marshal(extensionsDocument{
		Recommendations: []string{
			"ziglang.vscode-zig",
			"vadimcn.vscode-lldb",
		},
	})
}
