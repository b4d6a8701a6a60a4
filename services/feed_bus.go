package services

var _feedHub *RealtimeHub

func InitFeed(hub *RealtimeHub) {
	_feedHub = hub
}

// EmitFeedEvent pushes a small activity event to the owner's connected
// clients. Safe to call anywhere; a nil hub makes it a no-op.
func EmitFeedEvent(userID uint, kind string, payload any) {
	if _feedHub == nil {
		return
	}
	_feedHub.Broadcast(userID, map[string]any{
		"kind": kind,
		"data": payload,
	})
}
