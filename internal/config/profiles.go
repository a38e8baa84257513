package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
)

// Profiles covers the three phases of a milestone cycle. The commit profile
// defaults to a cheaper model since committing is mechanical work.
type Profiles struct {
	Work   domain.AgentProfile
	Review domain.AgentProfile
	Commit domain.AgentProfile
}

func defaultProfiles() Profiles {
	return Profiles{
		Work:   domain.AgentProfile{Model: domain.ModelSpec{Provider: "anthropic", Model: "claude-sonnet-4-5"}, Agent: "build"},
		Review: domain.AgentProfile{Model: domain.ModelSpec{Provider: "anthropic", Model: "claude-sonnet-4-5"}, Agent: "plan"},
		Commit: domain.AgentProfile{Model: domain.ModelSpec{Provider: "anthropic", Model: "claude-haiku-4-5"}, Agent: "build"},
	}
}

type profileYAML struct {
	Model string `yaml:"model"`
	Agent string `yaml:"agent"`
}

type profilesFileYAML struct {
	Version  int `yaml:"version"`
	Profiles struct {
		Work   profileYAML `yaml:"work"`
		Review profileYAML `yaml:"review"`
		Commit profileYAML `yaml:"commit"`
	} `yaml:"profiles"`
}

// LoadProfiles reads phase profiles from path, keeping defaults for anything
// unset. A missing file yields pure defaults.
func LoadProfiles(path string) (Profiles, error) {
	profiles := defaultProfiles()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profiles, nil
		}
		return Profiles{}, fmt.Errorf("read profiles file: %w", err)
	}

	var file profilesFileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Profiles{}, fmt.Errorf("decode profiles file: %w", err)
	}

	if profiles.Work, err = mergeProfile(profiles.Work, file.Profiles.Work); err != nil {
		return Profiles{}, fmt.Errorf("work profile: %w", err)
	}
	if profiles.Review, err = mergeProfile(profiles.Review, file.Profiles.Review); err != nil {
		return Profiles{}, fmt.Errorf("review profile: %w", err)
	}
	if profiles.Commit, err = mergeProfile(profiles.Commit, file.Profiles.Commit); err != nil {
		return Profiles{}, fmt.Errorf("commit profile: %w", err)
	}

	return profiles, nil
}

func mergeProfile(base domain.AgentProfile, override profileYAML) (domain.AgentProfile, error) {
	if override.Model != "" {
		spec, err := domain.ParseModelSpec(override.Model)
		if err != nil {
			return domain.AgentProfile{}, err
		}
		base.Model = spec
	}

	if override.Agent != "" {
		base.Agent = override.Agent
	}

	return base, nil
}
