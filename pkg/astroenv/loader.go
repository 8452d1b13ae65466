package astroenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Loader fills structs from environment variables using `env` tags:
//
//	`env:"KEY"`          required, error if unset
//	`env:"KEY,default"`  optional, default used if unset
//
// Nested structs are walked. After filling, `validate` tags are checked.
type Loader struct {
	// Prefix is prepended to every key, e.g. "ASTROCROP_".
	Prefix string
	// Files are .env files read before the environment. Missing files are
	// skipped; variables already set in the environment win.
	Files []string
}

// Load fills cfg with a Loader reading ".env" and no prefix.
func Load(cfg interface{}) error {
	return Loader{Files: []string{".env"}}.Load(cfg)
}

// Load fills cfg, which must be a pointer to a struct.
func (l Loader) Load(cfg interface{}) error {
	for _, f := range l.Files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", f, err)
		}
	}

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("astroenv: expected a pointer to a struct, got %T", cfg)
	}
	if err := l.fill(v.Elem()); err != nil {
		return err
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (l Loader) fill(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field, sf := v.Field(i), t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("env")
		if tag == "" {
			if field.Kind() == reflect.Struct {
				if err := l.fill(field); err != nil {
					return err
				}
			}
			continue
		}

		key, def, hasDef := parseTag(tag)
		key = l.Prefix + key
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			if !hasDef {
				return fmt.Errorf("missing required env variable %q (field %s)", key, sf.Name)
			}
			raw = def
		}
		if err := setField(field, raw); err != nil {
			return fmt.Errorf("env %s (field %s): %w", key, sf.Name, err)
		}
	}
	return nil
}

// parseTag splits "KEY,default". The default may itself contain commas.
func parseTag(tag string) (key, def string, hasDef bool) {
	key, def, hasDef = strings.Cut(tag, ",")
	return strings.TrimSpace(key), strings.TrimSpace(def), hasDef
}

var durationType = reflect.TypeOf(time.Duration(0))

func setField(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}
