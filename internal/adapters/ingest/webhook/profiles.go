package webhook

import (
	"sort"
	"strings"
	"sync"
)

// Profile describes a known webhook producer
// Synonyms are appended after the generic keys of the same field
type Profile struct {
	ID          string
	Name        string
	Description string
	Fields      []string
	Synonyms    map[string][]string
}

// Connector is the public catalog entry for a profile
type Connector struct {
	ID          string   `json:"id"          example:"bitrix24"`
	Name        string   `json:"name"        example:"Bitrix24 CRM"`
	Description string   `json:"description" example:"Подключение через вебхук Bitrix24"`
	WebhookURL  string   `json:"webhook_url" example:"/api/v1/ingest/webhook/bitrix24"`
	Fields      []string `json:"fields"`
}

var (
	mu       sync.RWMutex
	profiles = map[string]Profile{}
	rules    = map[string][]rule{}
)

// Register adds or replaces a source profile
func Register(p Profile) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		panic("webhook: profile id is required")
	}
	mu.Lock()
	defer mu.Unlock()
	profiles[id] = p
	rules[id] = extend(p.Synonyms)
}

// Get returns the profile registered for a source id
func Get(id string) (Profile, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := profiles[id]
	return p, ok
}

// Providers returns the registered source ids in sorted order
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(profiles))
	for id := range profiles {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Connectors renders the catalog with webhook URLs under base, e.g. "/api/v1/ingest/webhook"
func Connectors(base string) []Connector {
	base = strings.TrimRight(base, "/")
	ids := Providers()
	out := make([]Connector, 0, len(ids))
	for _, id := range ids {
		p, _ := Get(id)
		out = append(out, Connector{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			WebhookURL:  base + "/" + p.ID,
			Fields:      append([]string(nil), p.Fields...),
		})
	}
	return out
}

// rulesFor returns the table for a source, unknown sources get the generic one
func rulesFor(sourceID string) []rule {
	mu.RLock()
	r, ok := rules[sourceID]
	mu.RUnlock()
	if ok {
		return r
	}
	return generic
}

func init() {
	crmFields := []string{"name", "phone", "email", "company", "source", "utm_source", "utm_medium"}
	adsFields := []string{"conversion", "source", "campaign", "keyword", "cost", "value"}

	Register(Profile{
		ID:          "bitrix24",
		Name:        "Bitrix24 CRM",
		Description: "Подключение через вебхук Bitrix24",
		Fields:      crmFields,
		Synonyms: map[string][]string{
			"name":    {"title", "last_name"},
			"company": {"company_title"},
			"status":  {"status_id", "stage_id"},
			"amount":  {"opportunity"},
			"city":    {"address_city"},
			"page":    {"source_description"},
		},
	})
	Register(Profile{
		ID:          "amocrm",
		Name:        "amoCRM",
		Description: "Подключение через вебхук amoCRM",
		Fields:      crmFields,
		Synonyms: map[string][]string{
			"name":    {"contact"},
			"company": {"company_name"},
			"status":  {"status_id", "pipeline_status"},
			"amount":  {"price", "sale"},
		},
	})
	Register(Profile{
		ID:          "google-ads",
		Name:        "Google Ads",
		Description: "Импорт конверсий из Google Ads",
		Fields:      adsFields,
		Synonyms: map[string][]string{
			"conversion": {"conversion_action", "conversion_name"},
			"group_name": {"campaign_name", "ad_group", "ad_group_name"},
			"keywords":   {"keyword_text", "search_term"},
			"amount":     {"conversion_value"},
			"spend":      {"cost_amount"},
		},
	})
	Register(Profile{
		ID:          "yandex-direct",
		Name:        "Яндекс.Директ",
		Description: "Импорт конверсий из Яндекс.Директ",
		Fields:      adsFields,
		Synonyms: map[string][]string{
			"conversion": {"goal", "goal_name"},
			"group_name": {"campaign_name", "ad_group_name"},
			"keywords":   {"phrase", "criterion"},
			"spend":      {"cost_rub"},
		},
	})
	Register(Profile{
		ID:          "forms",
		Name:        "Формы сайта",
		Description: "JavaScript код для форм на сайте",
		Fields:      []string{"name", "phone", "email", "message", "page", "source"},
		Synonyms: map[string][]string{
			"name":  {"your-name", "first_name"},
			"phone": {"your-phone", "phone_mobile"},
			"email": {"your-email"},
			"page":  {"page_url", "pathname", "href"},
		},
	})
}
