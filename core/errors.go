package session

import "errors"

var (
	// ErrRoomCreateFailed marks registry failures during room creation. The
	// session is left unchanged; the operation must be retried manually.
	ErrRoomCreateFailed = errors.New("failed to create room")
	// ErrRoomJoinFailed marks invalid codes and registry failures during a
	// join. The session is left unchanged.
	ErrRoomJoinFailed = errors.New("failed to join room")
	// ErrCaptureInitFailed marks microphone or processing setup failures.
	// Capture controls stay in their pre-start state.
	ErrCaptureInitFailed = errors.New("failed to initialize audio capture")
)
