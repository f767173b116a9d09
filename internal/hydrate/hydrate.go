// Package hydrate decodes the encoded columns of stored records into their
// structured form. Exactly which columns are encoded is declared per entity
// (cars: gallery_images, specs; dealers: showroom_images, business_hours);
// nothing is sniffed at read time.
//
// Decode failures are expected for seeded or legacy rows and never reach the
// caller: the type-appropriate empty value is substituted and the failure is
// logged at debug level.
package hydrate

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// StringList decodes an encoded URL list, defaulting to an empty slice.
func StringList(raw datatypes.JSON, field string, logger *zap.Logger) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		if logger != nil {
			logger.Debug("encoded field decode failed, defaulting",
				zap.String("field", field),
				zap.Error(err),
			)
		}
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// StringMap decodes an encoded text mapping (business hours, specs),
// defaulting to an empty map.
func StringMap(raw datatypes.JSON, field string, logger *zap.Logger) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		if logger != nil {
			logger.Debug("encoded field decode failed, defaulting",
				zap.String("field", field),
				zap.Error(err),
			)
		}
		return map[string]string{}
	}
	if out == nil {
		return map[string]string{}
	}
	return out
}
