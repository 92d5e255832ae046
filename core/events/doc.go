// Package events defines the typed session event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - room.*
//   - transcript.*
//
// room events
//
//   - RoomConnectionStateChanged (room.connection_state_changed): the
//     session channel moved between disconnected/connecting/connected.
//   - RoomHostStatusUpdated (room.host_status_updated): the server reported
//     a host status change.
//   - RoomParticipantCountUpdated (room.participant_count_updated): the room
//     size changed.
//   - RoomLanguageConfirmed (room.language_confirmed): the server
//     acknowledged a language preference.
//   - RoomNotice (room.notice): user-visible notice text, including
//     server-reported errors passed through verbatim.
//   - RoomLeft (room.left): the session left its room and reset to the
//     initial state.
//   - RoomUnknownMessage (room.unknown_message): an inbound message of a
//     type outside the known contract, forwarded verbatim.
//
// transcript events
//
//   - TranscriptUpdated (transcript.updated): the transcript view changed;
//     carries a newest-first snapshot of the entries.
package events
