// Package loader provides document loading adapters.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/samber/lo"

	"github.com/0xcro3dile/chatlog-loader/internal/domain/entities"
	"github.com/0xcro3dile/chatlog-loader/internal/domain/ports"
)

// DefaultIDField is the record key used as content when no WithIDField option is given.
const DefaultIDField = "ID"

var _ ports.DocumentLoader = (*DiscordChatLoader)(nil)

// DiscordChatLoader converts chat-log records (rows of an export) into documents.
// The value under the id field becomes the content; every other field becomes an attribute.
type DiscordChatLoader struct {
	chatLog []any
	idField string
	logger  *slog.Logger
}

// Option configures a DiscordChatLoader.
type Option func(*DiscordChatLoader)

// WithIDField sets the key whose value becomes document content.
// The name is used as given; records are only checked for it during Load.
func WithIDField(name string) Option {
	return func(l *DiscordChatLoader) {
		l.idField = name
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *DiscordChatLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewDiscordChatLoader creates a loader over chatLog, which must be a slice or
// array of mappings (typically the result of decoding a JSON export).
func NewDiscordChatLoader(chatLog any, opts ...Option) (*DiscordChatLoader, error) {
	rows, err := asSequence(chatLog)
	if err != nil {
		return nil, err
	}
	return newLoader(rows, opts), nil
}

// NewDiscordChatLoaderFromRecords creates a loader over already-typed records.
func NewDiscordChatLoaderFromRecords(records []entities.Record, opts ...Option) *DiscordChatLoader {
	rows := make([]any, len(records))
	for i, r := range records {
		rows[i] = r
	}
	return newLoader(rows, opts)
}

func newLoader(rows []any, opts []Option) *DiscordChatLoader {
	l := &DiscordChatLoader{
		chatLog: rows,
		idField: DefaultIDField,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IDField returns the configured id field name.
func (l *DiscordChatLoader) IDField() string {
	return l.idField
}

// Load converts every record, in order, into a document.
// The first record without the id field aborts the call and no documents are returned.
func (l *DiscordChatLoader) Load(ctx context.Context) ([]entities.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]entities.Document, 0, len(l.chatLog))
	for i, row := range l.chatLog {
		rec, ok := asRecord(row)
		if !ok || !rec.Has(l.idField) {
			return nil, &MissingFieldError{
				Field:    l.idField,
				Index:    i,
				Snapshot: snapshot(row),
			}
		}

		docs = append(docs, entities.Document{
			Content:    stringify(rec[l.idField]),
			Attributes: map[string]any(lo.OmitByKeys(rec, []string{l.idField})),
		})
	}

	l.logger.Debug("chat log loaded", "documents", len(docs), "id_field", l.idField)
	return docs, nil
}

// asSequence copies the elements of a slice or array into a fresh []any.
func asSequence(chatLog any) ([]any, error) {
	switch v := chatLog.(type) {
	case []any:
		return append([]any(nil), v...), nil
	case []entities.Record:
		rows := make([]any, len(v))
		for i, r := range v {
			rows[i] = r
		}
		return rows, nil
	}

	rv := reflect.ValueOf(chatLog)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &InvalidInputShapeError{Type: fmt.Sprintf("%T", chatLog)}
	}
	// Raw payloads ([]byte, json.RawMessage) are undecoded exports, not rows.
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, &InvalidInputShapeError{Type: fmt.Sprintf("%T", chatLog)}
	}
	rows := make([]any, rv.Len())
	for i := range rows {
		rows[i] = rv.Index(i).Interface()
	}
	return rows, nil
}

// asRecord views a mapping with string keys as a Record.
func asRecord(row any) (entities.Record, bool) {
	switch r := row.(type) {
	case entities.Record:
		return r, true
	case map[string]any:
		return r, true
	}

	rv := reflect.ValueOf(row)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	rec := make(entities.Record, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		rec[iter.Key().String()] = iter.Value().Interface()
	}
	return rec, true
}
