package expander

import (
	"fmt"

	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/domain/idea"
)

const (
	expandTemplate    = "%s\n-"
	continuumTemplate = "Generate a wide variety of interesting, creative, factual, or hypothetical ideas related to:\n'%s'\n-"
	exploreTemplate   = "List related facts or expansions about: '%s'\n-"
)

// Profile is the prompt and sampling setup behind one expansion route.
type Profile struct {
	Name     string
	Template string
	Fallback idea.FallbackPolicy
	Sampling config.ProfileConfig
}

func (p Profile) Prompt(sentence string) string {
	return fmt.Sprintf(p.Template, sentence)
}

// Profiles pairs the fixed prompt templates with the configured sampling.
func Profiles(sampling map[string]config.ProfileConfig) map[string]Profile {
	defaults := config.DefaultProfiles()
	pick := func(name string) config.ProfileConfig {
		if s, ok := sampling[name]; ok {
			return s
		}
		return defaults[name]
	}
	return map[string]Profile{
		config.ProfileExpand: {
			Name:     config.ProfileExpand,
			Template: expandTemplate,
			Fallback: idea.FallbackWholeText,
			Sampling: pick(config.ProfileExpand),
		},
		config.ProfileContinuum: {
			Name:     config.ProfileContinuum,
			Template: continuumTemplate,
			Fallback: idea.FallbackSentenceSplit,
			Sampling: pick(config.ProfileContinuum),
		},
		config.ProfileExplore: {
			Name:     config.ProfileExplore,
			Template: exploreTemplate,
			Fallback: idea.FallbackWholeText,
			Sampling: pick(config.ProfileExplore),
		},
	}
}
