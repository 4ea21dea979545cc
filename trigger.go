package pagebar

// TriggerOptions configures the overflow trigger a host draws for a group.
type TriggerOptions struct {
	// Disabled forces the trigger to be inert regardless of the group.
	Disabled bool `json:"disabled"`
}

// Inert reports whether the trigger of group does nothing when activated:
// either it was disabled or the group has no pages to show.
func (o TriggerOptions) Inert(group Item) bool {
	return o.Disabled || group.Empty()
}
