package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sheetfeed/source"
)

const TranslationsFile = "translations.json"
const InterpretationFile = "interpretation.json"

// Builder drives one batch run: locate each dataset's tab, map the rows and
// write the JSON documents the site consumes. Datasets are built strictly
// sequentially - translations first, then interpretation.
type Builder struct {
	src    source.Source
	outdir string
}

func NewBuilder(src source.Source, outdir string) *Builder {
	return &Builder{
		src:    src,
		outdir: outdir,
	}
}

func (b *Builder) Build(ctx context.Context) error {
	if err := os.MkdirAll(b.outdir, 0770); err != nil {
		return err
	}

	if err := b.buildTranslations(ctx); err != nil {
		return err
	}

	return b.buildInterpretation(ctx)
}

// buildTranslations always produces translations.json - an empty array when
// no tab is found - so the site never 404s on its primary feed.
func (b *Builder) buildTranslations(ctx context.Context) error {
	records := []TranslationRecord{}

	if t, ok := locate(ctx, b.src, translationTabs, translationRange); !ok {
		infof("no translations data - writing empty feed")
	} else {
		index := ResolveHeaders(t.rows[0])

		for i, row := range t.rows[1:] {
			v := mapRow(row, index, translationFields)

			// ids are assigned before the empty-row filter, so published ids
			// can have gaps - the site keys bookmarks on them.
			record := TranslationRecord{
				ID:            i + 1,
				Type:          "Translation",
				Program:       v["program"],
				Title:         v["title"],
				Language:      v["language"],
				Status:        v["status"],
				DateRequested: v["dateRequested"],
				Date:          v["date"],
				Link:          v["link"],
			}

			if record.Program == "" && record.Title == "" {
				continue
			}

			records = append(records, record)
		}

		infof("mapped %d translation records from tab '%s'", len(records), t.name)
	}

	return b.write(TranslationsFile, records)
}

// buildInterpretation writes interpretation.json only when a tab was found -
// the dataset is optional and the site treats a missing file as "not
// configured".
func (b *Builder) buildInterpretation(ctx context.Context) error {
	t, ok := locate(ctx, b.src, interpretationTabs, interpretationRange)
	if !ok {
		infof("no interpretation data - skipping %s", InterpretationFile)
		return nil
	}

	index := ResolveHeaders(t.rows[0])
	records := []InterpretationRecord{}

	for i, row := range t.rows[1:] {
		v := mapRow(row, index, interpretationFields)

		records = append(records, InterpretationRecord{
			ID:          i + 1,
			Program:     v["program"],
			Type:        v["type"],
			EventName:   v["eventName"],
			EventDate:   v["eventDate"],
			EventTime:   v["eventTime"],
			Interpreter: v["interpreter"],
			Status:      v["status"],
		})
	}

	infof("mapped %d interpretation records from tab '%s'", len(records), t.name)

	return b.write(InterpretationFile, records)
}

func (b *Builder) write(file string, records interface{}) error {
	bytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing %s (%v)", file, err)
	}

	tmp, err := os.CreateTemp(b.outdir, "feed")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(append(bytes, '\n')); err != nil {
		return err
	}

	tmp.Close()

	path := filepath.Join(b.outdir, file)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	infof("wrote %s", path)

	return nil
}
