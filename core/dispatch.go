package session

import (
	"github.com/koscakluka/liveroom-core/core/events"
	"github.com/koscakluka/liveroom-core/core/protocol"
)

// dispatch routes one inbound message by type. The channel delivers messages
// in transport order, one at a time. Types outside the known contract are
// forwarded as events, never silently dropped.
func (c *Coordinator) dispatch(msg protocol.Message) {
	switch msg.Type {
	case protocol.TypeHostStatus:
		c.emitEvent(events.NewRoomHostStatusUpdated(msg.Status))

	case protocol.TypeUserLeft:
		if msg.UserID == c.identity {
			c.LeaveRoom()
			return
		}
		if msg.ParticipantCount != nil {
			c.emitEvent(events.NewRoomParticipantCountUpdated(*msg.ParticipantCount))
		}

	case protocol.TypeParticipantCount:
		if msg.Count != nil {
			c.emitEvent(events.NewRoomParticipantCountUpdated(*msg.Count))
		}

	case protocol.TypeLanguageConfirmed:
		c.emitEvent(events.NewRoomLanguageConfirmed(msg.Language))

	case protocol.TypeError:
		// Server errors are user-visible notices; they never close the
		// channel.
		c.emitEvent(events.NewRoomNotice(msg.Text))

	case protocol.TypePartial:
		c.transcripts.ApplyPartial(msg.Text)
		c.emitEvent(events.NewTranscriptUpdated(c.transcripts.Entries()))

	case protocol.TypeFinal:
		c.transcripts.ApplyFinal(msg.Text)
		c.emitEvent(events.NewTranscriptUpdated(c.transcripts.Entries()))

	case protocol.TypeTranslation:
		c.transcripts.ApplyTranslation(msg.Text)
		c.emitEvent(events.NewTranscriptUpdated(c.transcripts.Entries()))

	default:
		c.emitEvent(events.NewRoomUnknownMessage(msg))
	}
}
