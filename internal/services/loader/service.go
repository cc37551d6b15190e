package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/prizedraw/internal/common/uuid"
	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/KirkDiggler/prizedraw/internal/repositories/prizeconfig"
)

// service implements the Service interface
type service struct {
	source   prizeconfig.Source
	uuid     uuid.UUID
	validate *validator.Validate
}

// New creates a new loader service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Source == nil {
		return nil, ErrNilSource
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		source:   cfg.Source,
		uuid:     cfg.UUID,
		validate: validator.New(),
	}, nil
}

// Load fetches the document and builds one undrawn record per name
func (s *service) Load(ctx context.Context) (*LoadOutput, error) {
	payload, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	doc, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailed, payload.Origin, err)
	}

	for i, name := range doc.Prizes {
		doc.Prizes[i] = strings.TrimSpace(name)
	}

	if err := s.validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrLoadFailed, payload.Origin, describeValidation(err))
	}

	prizes := make([]models.Prize, 0, len(doc.Prizes))
	for _, name := range doc.Prizes {
		prizes = append(prizes, models.Prize{
			ID:   s.uuid.NewUUID(),
			Name: name,
		})
	}

	return &LoadOutput{
		Prizes: prizes,
		Origin: payload.Origin,
	}, nil
}

// Describe returns the source description
func (s *service) Describe() string {
	return s.source.Describe()
}

func decode(payload *prizeconfig.Payload) (*document, error) {
	if payload == nil || len(bytes.TrimSpace(payload.Data)) == 0 {
		return nil, errors.New("document is empty")
	}

	var doc document
	switch payload.Format {
	case prizeconfig.FormatYAML:
		if err := yaml.Unmarshal(payload.Data, &doc); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(payload.Data, &doc); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	}
	return &doc, nil
}

// describeValidation flattens validator errors into one readable line
func describeValidation(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			if strings.Contains(field, "[") {
				parts = append(parts, field+" must not be blank")
			} else {
				parts = append(parts, field+" is required")
			}
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
