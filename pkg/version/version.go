package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/deepx/semspace/pkg/version.Commit=...".
var (
	Version   = "0.3.0"
	AppName   = "SemSpace"
	Commit    = "dev"
	BuildDate = "unknown"
)

// Backend names a model provider and the model it serves.
type Backend struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type Info struct {
	AppName    string   `json:"app_name"`
	Version    string   `json:"version"`
	Commit     string   `json:"commit"`
	BuildDate  string   `json:"build_date"`
	GoVersion  string   `json:"go_version"`
	Platform   string   `json:"platform"`
	Generation *Backend `json:"generation,omitempty"`
	Embedding  *Backend `json:"embedding,omitempty"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// WithBackends reports which models answer generation and embedding calls.
func (i Info) WithBackends(generation, embedding Backend) Info {
	i.Generation = &generation
	i.Embedding = &embedding
	return i
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", i.AppName, i.Version, i.Commit, i.Platform)
}
