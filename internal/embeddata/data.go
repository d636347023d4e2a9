package embeddata

import (
	"embed"
	"io/fs"
)

//go:embed about.md sample.txt tips.json
var embeddedFS embed.FS

// FS returns the embedded filesystem with access to about.md, sample.txt and tips.json.
func FS() fs.FS {
	return embeddedFS
}

// ReadAboutMD returns the contents of about.md.
func ReadAboutMD() ([]byte, error) {
	return embeddedFS.ReadFile("about.md")
}

// ReadSampleMission returns the bundled sample mission script.
func ReadSampleMission() ([]byte, error) {
	return embeddedFS.ReadFile("sample.txt")
}

// ReadTips returns the mission control tips as JSON.
func ReadTips() ([]byte, error) {
	return embeddedFS.ReadFile("tips.json")
}
