package history

import (
	"encoding/csv"
	"io"
	"strings"
	"sync"
	"time"

	"medassist/types"

	"github.com/google/uuid"
)

// Log is a session-scoped, append-only record of answered questions. It
// lives only in process memory and dies with the session.
type Log struct {
	mu      sync.Mutex
	entries []types.HistoryEntry
}

// NewLog creates an empty session log.
func NewLog() *Log {
	return &Log{entries: make([]types.HistoryEntry, 0)}
}

// Append records one answered question. Entries are never modified or
// removed afterwards.
func (l *Log) Append(question string, answer types.Answer, severity types.Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, types.HistoryEntry{
		Question: question,
		Answer:   answer.Text,
		Sources:  answer.Sources,
		Severity: severity,
		AskedAt:  time.Now(),
	})
}

// Entries returns the log in reverse-insertion order (newest first), as the
// history view displays it.
func (l *Log) Entries() []types.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.HistoryEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// ExportCSV writes the session as delimited text: a header row, then one
// row per question in insertion order with source URLs joined by "; " in
// their original retrieval order.
func (l *Log) ExportCSV(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"question", "answer", "sources"}); err != nil {
		return err
	}

	for _, e := range l.entries {
		urls := make([]string, 0, len(e.Sources))
		for _, s := range e.Sources {
			urls = append(urls, s.URL)
		}
		if err := cw.Write([]string{e.Question, e.Answer, strings.Join(urls, "; ")}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Store hands out session logs by ID for the HTTP surface. Nothing is
// persisted; a restart forgets every session.
type Store struct {
	mu   sync.Mutex
	logs map[string]*Log
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{logs: make(map[string]*Log)}
}

// Session returns the log for the given ID, creating it on first use. An
// empty ID gets a fresh session with a generated ID. The returned ID is
// always usable for subsequent lookups.
func (s *Store) Session(id string) (string, *Log) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}

	l, ok := s.logs[id]
	if !ok {
		l = NewLog()
		s.logs[id] = l
	}
	return id, l
}
