package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"s3-audio-translate/internal/app/model"
)

// ToExcel writes one row per result: file key, original text and the
// translation columns (empty when no translation was made).
func ToExcel(results []model.TranscriptResult, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcripts")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Exported At"
	headerRow.AddCell().Value = "Original Transcript"
	headerRow.AddCell().Value = "Target Language"
	headerRow.AddCell().Value = "Translation"

	exportedAt := time.Now().Format(time.RFC3339)
	for _, r := range results {
		row := sheet.AddRow()
		row.AddCell().Value = r.FileKey
		row.AddCell().Value = exportedAt
		row.AddCell().Value = r.OriginalText
		row.AddCell().Value = r.TargetLanguage
		row.AddCell().Value = r.TranslatedText
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
