package module

import (
	"strings"

	"leadlens/internal/adapters/ingest/webhook"
)

// describeProfiles lists the registered CRM profiles on the webhook source parameter
// and the accepted payload keys per lead field on the operation itself
func describeProfiles(spec map[string]any) {
	paths, _ := spec["paths"].(map[string]any)
	item, _ := paths["/ingest/webhook/{source}"].(map[string]any)
	op, _ := item["post"].(map[string]any)
	if op == nil {
		return
	}
	params, _ := op["parameters"].([]any)
	for _, p := range params {
		if pm, ok := p.(map[string]any); ok && pm["name"] == "source" {
			pm["description"] = "any label; known profiles add CRM synonyms: " + strings.Join(webhook.Providers(), ", ")
		}
	}
	op["description"] = keyTable()
}

// keyTable renders one line per field with its generic keys in priority order
func keyTable() string {
	var b strings.Builder
	b.WriteString("Payload keys are matched case-insensitively, the first non empty one wins.\n")
	for _, f := range webhook.Fields() {
		b.WriteString("\n- `" + f + "`: " + strings.Join(webhook.Synonyms("", f), ", "))
	}
	return b.String()
}
