// Package protocol defines the text-frame message contract for room
// channels.
//
// Message types:
//
//   - ping: participant keepalive, no payload.
//   - host_status{status}: host connection status update.
//   - user_left{user_id, participant_count?}: a member left the room.
//   - participant_count{count}: current room size.
//   - language_preference{language}: outbound only, participant translation
//     preference.
//   - language_confirmed{language}: server acknowledged a preference.
//   - partial{text}: in-progress transcript for the current utterance.
//   - final{text}: completed transcript for one utterance.
//   - translation{text}: translation of the most recent final transcript.
//   - error{text}: server-reported error, surfaced verbatim.
//
// Messages with types outside this list decode successfully and are carried
// with their raw frame so upper layers can forward them to a generic
// handler. Only unparseable frames and frames without a type are rejected.
package protocol
