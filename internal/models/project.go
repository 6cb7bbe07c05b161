package models

// Project is the single domain entity: a portfolio entry backed by one
// document in the "project" collection. ID is the store's ObjectID in hex;
// the native _id never leaves the repository layer.
type Project struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GithubURL   string   `json:"github_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// ProjectSchema returns the machine-readable shape of Project for the
// workspace database viewer, in JSON-schema form.
func ProjectSchema() map[string]interface{} {
	return map[string]interface{}{
		"title": "Project",
		"type":  "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"title": "Title",
				"type":  "string",
			},
			"description": map[string]interface{}{
				"title": "Description",
				"type":  "string",
			},
			"tags": map[string]interface{}{
				"title": "Tags",
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
			"github_url": map[string]interface{}{
				"title":  "Github Url",
				"type":   "string",
				"format": "uri",
			},
			"live_url": map[string]interface{}{
				"title":  "Live Url",
				"type":   "string",
				"format": "uri",
			},
			"thumbnail": map[string]interface{}{
				"title":  "Thumbnail",
				"type":   "string",
				"format": "uri",
			},
		},
		"required": []string{"title"},
	}
}
