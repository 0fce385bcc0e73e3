// Package tracker owns the task list, the note list and the achievement
// state of a tally session.
//
// A [Tracker] exposes three mutations: [Tracker.AddTask], [Tracker.AddNote]
// and [Tracker.ToggleTask]. Each one re-evaluates every achievement rule
// before returning and publishes an [event.AchievementUnlockedEvent] for
// each flag that moves from false to true. Flags never move back.
//
// The tracker is not safe for concurrent use. Callers serialize access; the
// TUI does so naturally because bubbletea delivers one message at a time.
//
// Ids are produced by an injected [IDGenerator]. The default
// [CounterIDs] yields "task-1", "task-2", ... and "note-1", ...; [UUIDIDs]
// yields random UUIDs.
package tracker
