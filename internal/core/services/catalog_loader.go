package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/dto"
	"github.com/SscSPs/change_maker/internal/middleware"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the YAML layout of an extra-currencies file:
//
//	currencies:
//	  - code: GBP
//	    denominations:
//	      - {value: "1", singular: pound coin, plural: pound coins}
type CatalogFile struct {
	Currencies []dto.CreateCurrencyRequest `yaml:"currencies"`
}

// LoadCurrencyCatalog registers every currency defined in r. It stops at the first invalid entry.
func LoadCurrencyCatalog(ctx context.Context, r io.Reader, writer portssvc.CurrencyWriterSvc, createdBy string) (int, error) {
	var file CatalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to decode currency catalog: %w", err)
	}

	for i, req := range file.Currencies {
		if _, err := writer.CreateCurrency(ctx, req, createdBy); err != nil {
			return i, fmt.Errorf("catalog entry %d (%s): %w", i+1, req.CurrencyCode, err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Currency catalog loaded", slog.Int("currencies", len(file.Currencies)))
	return len(file.Currencies), nil
}
