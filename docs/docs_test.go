package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}

	var doc struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Info     struct{ Title string }     `json:"info"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if doc.Swagger != "2.0" {
		t.Fatalf("swagger = %q, want 2.0", doc.Swagger)
	}
	if doc.BasePath != "/api" {
		t.Fatalf("basePath = %q, want /api", doc.BasePath)
	}
	if doc.Info.Title != "Questboard REST API" {
		t.Fatalf("title = %q", doc.Info.Title)
	}
	for _, path := range []string{"/", "/add/", "/{id}/", "/events/{id}/join/", "/requests/{id}/", "/token/blacklist/"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Fatalf("path %q missing from doc", path)
		}
	}
}
