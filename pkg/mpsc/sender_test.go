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

package mpsc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmunye/mpsc/pkg/mpsc"
)

func TestSender_Clone_KeepsChannelOpen(t *testing.T) {
	t.Parallel()

	tx, rx := mpsc.New[int]()
	clone := tx.Clone()

	// Closing the original must not disconnect the channel while the clone survives: the clone is a registration,
	// not a pointer copy, so the live-sender count still reads 1.
	require.NoError(t, tx.Close())

	clone.Send(5)
	v, err := rx.Recv()
	require.NoError(t, err, "Send must succeed as long as any Sender instance survives")
	assert.Equal(t, 5, v)

	_, err = rx.TryRecv()
	require.ErrorIs(t, err, mpsc.ErrEmpty, "the channel must still be open while the clone lives")

	require.NoError(t, clone.Close())
	_, err = rx.Recv()
	require.ErrorIs(t, err, mpsc.ErrDisconnected, "closing the final clone must disconnect the channel")
}

func TestSender_Close_Idempotent(t *testing.T) {
	t.Parallel()

	tx, rx := mpsc.New[int]()
	clone := tx.Clone()

	require.NoError(t, tx.Close())
	err := tx.Close()
	require.ErrorIs(t, err, mpsc.ErrClosedSender, "a duplicate Close must be reported")

	// The duplicate close must not have decremented the live-sender count a second time, or the channel would now
	// falsely read as disconnected.
	_, err = rx.TryRecv()
	require.ErrorIs(t, err, mpsc.ErrEmpty,
		"a double Close of one handle must not disconnect a channel that still has a live sender")

	require.NoError(t, clone.Close())
	_, err = rx.Recv()
	require.ErrorIs(t, err, mpsc.ErrDisconnected)
}

func TestSender_UseAfterClose_Panics(t *testing.T) {
	t.Parallel()

	tx, _ := mpsc.New[int]()
	require.NoError(t, tx.Close())

	assert.PanicsWithValue(t, "mpsc: Send on closed Sender", func() {
		tx.Send(1)
	}, "Send on a closed handle is a programming error")

	assert.PanicsWithValue(t, "mpsc: Clone of closed Sender", func() {
		tx.Clone()
	}, "Clone of a closed handle is a programming error")
}

func TestSender_SendAfterReceiverAbandoned(t *testing.T) {
	t.Parallel()

	// The channel deliberately has no "receiver gone" signal: Send stays infallible and the values are simply
	// retained until the senders close. This pins that behavior.
	tx, rx := mpsc.New[int]()
	_ = rx

	tx.Send(42)
	require.NoError(t, tx.Close())
}
