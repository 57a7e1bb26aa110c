package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/aalvaropc/addrbook/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

func (i Info) String() string {
	return fmt.Sprintf("addrbook %s (commit=%s, date=%s)", i.Version, i.Commit, i.Date)
}

func String() string {
	return Get().String()
}
