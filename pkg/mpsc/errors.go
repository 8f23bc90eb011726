/*
Copyright 2026 The mpsc Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mpsc

import "errors"

var (
	// ErrDisconnected is a sentinel error indicating that the queue is empty and no live `Sender` remains, so no further
	// values can ever arrive. It is the normal end-of-stream signal, not a fault: callers should stop calling `Recv`
	// once they observe it. The condition is permanent; every subsequent receive on the same channel reports it again.
	//
	// Callers should use `errors.Is(err, ErrDisconnected)` to check for this condition.
	ErrDisconnected = errors.New("channel disconnected: no senders remain")

	// ErrEmpty is a sentinel error returned only by `TryRecv` when the channel holds no value right now but at least one
	// `Sender` is still live. Unlike `ErrDisconnected` it is transient; a later probe may succeed.
	//
	// Callers should use `errors.Is(err, ErrEmpty)` to check for this condition.
	ErrEmpty = errors.New("channel empty")

	// ErrClosedSender is returned by `Sender.Close` when the handle was already closed. The duplicate close is ignored;
	// the live-sender count is decremented exactly once per handle.
	ErrClosedSender = errors.New("sender already closed")
)
