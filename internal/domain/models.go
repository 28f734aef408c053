package domain

// Activity represents one on-chain event attributed to an account.
// The fields mirror the activity data API response; everything beyond the
// rendered fields is treated as opaque.
type Activity struct {
	ID        string   `json:"id"`
	Network   string   `json:"network"`
	Platform  string   `json:"platform,omitempty"`
	Tag       string   `json:"tag,omitempty"`
	Type      string   `json:"type"`
	Timestamp int64    `json:"timestamp"` // unix seconds
	Actions   []Action `json:"actions,omitempty"`
}

// Action is a sub-event within an Activity describing a specific
// transfer or interaction.
type Action struct {
	Tag         string         `json:"tag,omitempty"`
	Type        string         `json:"type,omitempty"`
	From        string         `json:"from,omitempty"`
	To          string         `json:"to,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	RelatedURLs []string       `json:"related_urls,omitempty"`
}

// FirstAction returns the first action of the activity, if any.
// Records without actions are valid; callers must check ok.
func (a Activity) FirstAction() (Action, bool) {
	if len(a.Actions) == 0 {
		return Action{}, false
	}
	return a.Actions[0], true
}

// FirstRelatedURL returns the first related URL of the action, if any.
func (ac Action) FirstRelatedURL() (string, bool) {
	if len(ac.RelatedURLs) == 0 {
		return "", false
	}
	return ac.RelatedURLs[0], true
}

// MetadataValue returns the "value" entry of the action metadata as a
// string, if present.
func (ac Action) MetadataValue() (string, bool) {
	v, ok := ac.Metadata["value"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
