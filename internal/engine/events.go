package engine

// Events is a capability interface the engine notifies as transitions
// commit. The engine calls it but does not own it: implementations
// live in the composition layer (the TUI plays flashes and reaction
// lines, tests record calls). All methods are fire-and-forget.
type Events interface {
	ItemCollected(item Item)
	ItemBlocked(item Item, reason string)
	ScreenEntered(id ScreenID)
	GameEnded(ending Ending)
}

// NopEvents discards all notifications.
type NopEvents struct{}

func (NopEvents) ItemCollected(Item)       {}
func (NopEvents) ItemBlocked(Item, string) {}
func (NopEvents) ScreenEntered(ScreenID)   {}
func (NopEvents) GameEnded(Ending)         {}

var _ Events = NopEvents{}
