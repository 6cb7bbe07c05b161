// Package seed holds the fixed sample set inserted into an empty store on
// first run.
package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"seedcodes/internal/models"
)

//go:embed projects.yaml
var sampleFiles embed.FS

type sampleFile struct {
	Projects []sampleProject `yaml:"projects"`
}

type sampleProject struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	GithubURL   string   `yaml:"github_url"`
	LiveURL     string   `yaml:"live_url"`
	Thumbnail   string   `yaml:"thumbnail"`
}

// Projects returns the embedded sample set. The file is part of the
// binary, so a parse failure is a build defect and panics.
func Projects() []models.Project {
	data, err := sampleFiles.ReadFile("projects.yaml")
	if err != nil {
		panic(fmt.Sprintf("read embedded sample set: %v", err))
	}

	var file sampleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		panic(fmt.Sprintf("unmarshal embedded sample set: %v", err))
	}

	projects := make([]models.Project, 0, len(file.Projects))
	for _, s := range file.Projects {
		projects = append(projects, models.Project{
			Title:       s.Title,
			Description: s.Description,
			Tags:        s.Tags,
			GithubURL:   s.GithubURL,
			LiveURL:     s.LiveURL,
			Thumbnail:   s.Thumbnail,
		})
	}

	return projects
}
