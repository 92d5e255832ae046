package session

import "github.com/koscakluka/liveroom-core/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(callbacks coordinatorCallbacks) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.RoomConnectionStateChanged:
			if callbacks.onConnectionStateChanged != nil {
				callbacks.onConnectionStateChanged(typedEvent.State)
			}
		case events.RoomHostStatusUpdated:
			if callbacks.onHostStatusUpdated != nil {
				callbacks.onHostStatusUpdated(typedEvent.Status)
			}
		case events.RoomParticipantCountUpdated:
			if callbacks.onParticipantCountUpdated != nil {
				callbacks.onParticipantCountUpdated(typedEvent.Count)
			}
		case events.RoomLanguageConfirmed:
			if callbacks.onLanguageConfirmed != nil {
				callbacks.onLanguageConfirmed(typedEvent.Language)
			}
		case events.RoomNotice:
			if callbacks.onNotice != nil {
				callbacks.onNotice(typedEvent.Text)
			}
		case events.RoomLeft:
			if callbacks.onRoomLeft != nil {
				callbacks.onRoomLeft()
			}
		case events.RoomUnknownMessage:
			if callbacks.onUnknownMessage != nil {
				callbacks.onUnknownMessage(typedEvent.Message)
			}
		case events.TranscriptUpdated:
			if callbacks.onTranscriptUpdated != nil {
				callbacks.onTranscriptUpdated(typedEvent.Entries)
			}
		}
	}
}
