package cmd

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

const tableBatchRows = 1024

var recordSchema = arrow.NewSchema([]arrow.Field{
	{Name: "index", Type: arrow.PrimitiveTypes.Int64},
	{Name: "identifier", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "organism", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "definition", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "info", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "header", Type: arrow.BinaryTypes.String},
	{Name: "sequence", Type: arrow.BinaryTypes.String},
	{Name: "length", Type: arrow.PrimitiveTypes.Int64},
}, nil)

// recordTable streams records into an Arrow IPC file, one record batch per
// tableBatchRows entries.
type recordTable struct {
	file    *os.File
	builder *array.RecordBuilder
	writer  *ipc.Writer
	rows    int
}

func newRecordTable(path string) (*recordTable, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create arrow table: %w", err)
	}
	mem := memory.NewGoAllocator()
	return &recordTable{
		file:    f,
		builder: array.NewRecordBuilder(mem, recordSchema),
		writer:  ipc.NewWriter(f, ipc.WithSchema(recordSchema), ipc.WithAllocator(mem)),
	}, nil
}

func (t *recordTable) append(rec Record, header string) error {
	b := t.builder
	b.Field(0).(*array.Int64Builder).Append(int64(rec.Index))
	appendNullable(b.Field(1).(*array.StringBuilder), rec.Identifier, rec.Identifier != "")
	appendNullable(b.Field(2).(*array.StringBuilder), rec.Organism, rec.Organism != "")
	appendNullable(b.Field(3).(*array.StringBuilder), rec.Definition, rec.HasDefinition)
	appendNullable(b.Field(4).(*array.StringBuilder), rec.Info, rec.Info != "")
	b.Field(5).(*array.StringBuilder).Append(header)
	b.Field(6).(*array.StringBuilder).Append(rec.Sequence)
	b.Field(7).(*array.Int64Builder).Append(int64(len(rec.Sequence)))

	t.rows++
	if t.rows >= tableBatchRows {
		return t.flush()
	}
	return nil
}

func appendNullable(b *array.StringBuilder, value string, valid bool) {
	if !valid {
		b.AppendNull()
		return
	}
	b.Append(value)
}

func (t *recordTable) flush() error {
	if t.rows == 0 {
		return nil
	}
	batch := t.builder.NewRecord()
	defer batch.Release()
	t.rows = 0
	if err := t.writer.Write(batch); err != nil {
		return fmt.Errorf("write arrow batch: %w", err)
	}
	return nil
}

func (t *recordTable) Close() error {
	err := t.flush()
	if cerr := t.writer.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close arrow writer: %w", cerr)
	}
	t.builder.Release()
	if cerr := t.file.Close(); err == nil {
		err = cerr
	}
	return err
}
