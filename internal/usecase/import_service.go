package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/mittlag/flaggstats/internal/domain/game"
	"github.com/mittlag/flaggstats/internal/platform/csvmap"
	"github.com/mittlag/flaggstats/internal/platform/logging"
)

// DelimiterAuto asks the pipeline to sniff the separator from the first line.
const DelimiterAuto = "auto"

// integerColumns are coerced with strconv; anything unparsable skips the row.
var integerColumns = map[string]bool{
	"year":       true,
	"home_score": true,
	"away_score": true,
}

// ImportOptions are the caller-facing knobs of one import run.
type ImportOptions struct {
	// Delimiter is ";", ",", "\t" or DelimiterAuto.
	Delimiter string
	// HasHeader marks the first record as a header row.
	HasHeader bool
}

// ImportSummary reports everything that happened during one run. Inserted and
// Skipped never hide each other: a row is counted exactly once.
type ImportSummary struct {
	Inserted       int               `json:"inserted"`
	Skipped        int               `json:"skipped"`
	Delimiter      string            `json:"delimiter"`
	MappedColumns  map[string]string `json:"mappedColumns"`
	UnknownColumns []string          `json:"unknownColumns,omitempty"`
	Notes          []string          `json:"notes,omitempty"`
	Errors         []string          `json:"errors,omitempty"`
}

type ImportService struct {
	gameRepo game.Repository
	logger   *logging.Logger
}

func NewImportService(gameRepo game.Repository, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

// ImportGames streams a delimited file into flagg_games. Rows are inserted
// one by one; a bad row is recorded and skipped, it never aborts the run.
func (s *ImportService) ImportGames(ctx context.Context, upload io.Reader, opts ImportOptions) (ImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportGames")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, upload); err != nil {
		return ImportSummary{}, fmt.Errorf("read upload: %w", err)
	}
	if len(bytes.TrimSpace(buf.B)) == 0 {
		return ImportSummary{}, fmt.Errorf("%w: uploaded file is empty", ErrInvalidInput)
	}

	delimiter, err := resolveDelimiter(opts.Delimiter, buf.B)
	if err != nil {
		return ImportSummary{}, err
	}

	reader := csv.NewReader(bytes.NewReader(buf.B))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first, err := reader.Read()
	if err != nil {
		return ImportSummary{}, fmt.Errorf("%w: no records in upload", ErrInvalidInput)
	}

	summary := ImportSummary{Delimiter: string(delimiter)}

	headers := first
	var carried []string
	if !opts.HasHeader {
		// No header row: synthesize positional names and treat the first
		// record as data.
		headers = make([]string, len(first))
		for i := range first {
			headers[i] = fmt.Sprintf("col%d", i+1)
		}
		carried = first
	}

	mapping := csvmap.MapHeaders(headers)
	summary.MappedColumns = mapping.Used
	summary.UnknownColumns = mapping.Unknown
	summary.Notes = mapping.Notes
	if !mapping.Mapped() {
		return summary, fmt.Errorf("%w: no usable columns in upload", ErrInvalidInput)
	}

	rowNum := 1
	if carried != nil {
		s.importRow(ctx, &summary, mapping, carried, rowNum)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("row %d skipped: %v", rowNum, err))
			continue
		}
		s.importRow(ctx, &summary, mapping, record, rowNum)
	}

	s.logger.InfoContext(ctx, "import finished",
		"inserted", summary.Inserted,
		"skipped", summary.Skipped,
		"delimiter", summary.Delimiter,
	)

	return summary, nil
}

func (s *ImportService) importRow(ctx context.Context, summary *ImportSummary, mapping csvmap.Mapping, record []string, rowNum int) {
	if isBlankRecord(record) {
		return
	}

	fields, err := buildFields(mapping, record)
	if err != nil {
		summary.Skipped++
		summary.Errors = append(summary.Errors, fmt.Sprintf("row %d skipped: %v", rowNum, err))
		return
	}

	if _, err := s.gameRepo.Insert(ctx, fields); err != nil {
		err = crerr.Wrapf(err, "row %d", rowNum)
		s.logger.WarnContext(ctx, "row insert failed", "row", rowNum, "error", err)
		summary.Skipped++
		summary.Errors = append(summary.Errors, fmt.Sprintf("row %d skipped: insert failed", rowNum))
		return
	}

	summary.Inserted++
}

// buildFields maps one record onto the insertable columns. Later columns win
// when two map to the same destination.
func buildFields(mapping csvmap.Mapping, record []string) (game.Fields, error) {
	var fields game.Fields
	for i, raw := range record {
		dest, ok := mapping.Target(i)
		if !ok {
			continue
		}

		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}

		if integerColumns[dest] {
			n, err := strconv.Atoi(value)
			if err != nil {
				return game.Fields{}, fmt.Errorf("column %s: %q is not a number", dest, value)
			}
			setIntField(&fields, dest, n)
			continue
		}

		setStringField(&fields, dest, value)
	}

	return fields, nil
}

func setIntField(f *game.Fields, dest string, n int) {
	switch dest {
	case "year":
		f.Year = &n
	case "home_score":
		f.HomeScore = &n
	case "away_score":
		f.AwayScore = &n
	}
}

func setStringField(f *game.Fields, dest, value string) {
	switch dest {
	case "division":
		f.Division = &value
	case "class":
		f.Class = &value
	case "group_name":
		f.GroupName = &value
	case "home_team_id":
		f.HomeTeamID = &value
	case "away_team_id":
		f.AwayTeamID = &value
	case "match_type":
		f.MatchType = &value
	case "match_date":
		f.MatchDate = &value
	case "competition":
		f.Competition = &value
	case "typ":
		f.Typ = &value
	case "location":
		f.Location = &value
	case "city":
		f.City = &value
	}
}

func resolveDelimiter(requested string, data []byte) (rune, error) {
	switch requested {
	case "", DelimiterAuto:
		return csvmap.DetectDelimiter(firstNonEmptyLine(data)), nil
	case ";", ",", "\t", `\t`:
		if requested == `\t` {
			return '\t', nil
		}
		return rune(requested[0]), nil
	default:
		return 0, fmt.Errorf("%w: unsupported delimiter %q", ErrInvalidInput, requested)
	}
}

func firstNonEmptyLine(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

func isBlankRecord(record []string) bool {
	if len(record) == 0 {
		return true
	}
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}
