package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("i18n: translation adapter is nil")
	ErrEmptyLanguageCode = errors.New("i18n: empty language code")
	ErrNilTranslations   = errors.New("i18n: nil translations map")

	ErrParsingCancelled  = errors.New("i18n: parsing cancelled")
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")
	ErrInvalidStructure  = errors.New("i18n: invalid translation file structure")

	ErrLoadingCancelled  = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir   = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile  = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile = errors.New("i18n: failed to parse translation file")
)
