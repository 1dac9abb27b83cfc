package oslg

import (
	"fmt"
	"reflect"
	"strings"
)

// outcome distinguishes a builder call that stored an entry from one that
// was suppressed (invalid arguments or below the session minimum). Builders
// never surface it; callers get their fallback value in every case.
type outcome int

const (
	suppressed outcome = iota
	recorded
)

// Trim strips surrounding whitespace and truncates to a maximum length
// (60 unless a positive limit is supplied).
func Trim(s string, limits ...int) string {
	limit := DefaultTrimLength
	if len(limits) > 0 && limits[0] > 0 {
		limit = limits[0]
	}

	return trim(s, limit)
}

func trim(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit < 0 {
		limit = 0
	}

	if r := []rune(s); len(r) > limit {
		s = string(r[:limit])
	}

	return s
}

// checkTemplate applies the validation rule shared by all template builders:
// identifier and calling-context labels must be non-blank, and the severity
// must be within the accepted range.
func checkTemplate(id, caller string, lvl Level) (string, string, bool) {
	id = Trim(id)
	caller = Trim(caller)

	if id == "" || caller == "" || !lvl.valid() {
		return id, caller, false
	}

	return id, caller, true
}

// Invalid logs a template "invalid object" diagnostic and returns res. With
// ord > 0 the message names the 1-based argument position:
//
//	Invalid 'floor area' arg #2 (addInternalMass)
//
// A blank id or caller, or an out-of-range lvl, is a silent no-op; res is
// returned in every case.
func Invalid[T any](l *Logger, id, caller string, ord int, lvl Level, res T) T {
	if l != nil {
		l.invalid(id, caller, ord, lvl)
	}

	return res
}

func (l *Logger) invalid(id, caller string, ord int, lvl Level) outcome {
	id, caller, ok := checkTemplate(id, caller, lvl)
	if !ok {
		return suppressed
	}

	msg := fmt.Sprintf("Invalid '%s' ", id)

	if ord > 0 {
		msg += fmt.Sprintf("arg #%d ", ord)
	}

	msg += fmt.Sprintf("(%s)", caller)

	return l.record(lvl, msg)
}

// Mismatch logs a template "type mismatch" diagnostic and returns res:
//
//	'zone multiplier' string? expecting int (thermalZone)
//
// The check is reflect-based: when obj's dynamic type is already assignable
// to expected (including interface satisfaction), nothing is logged. A nil
// expected type is a silent no-op. res is returned in every case.
func Mismatch[T any](l *Logger, id string, obj any, expected reflect.Type, caller string, lvl Level, res T) T {
	if l != nil {
		l.mismatch(id, obj, expected, caller, lvl)
	}

	return res
}

func (l *Logger) mismatch(id string, obj any, expected reflect.Type, caller string, lvl Level) outcome {
	if expected == nil {
		return suppressed
	}

	if t := reflect.TypeOf(obj); t != nil && t.AssignableTo(expected) {
		return suppressed
	}

	id, caller, ok := checkTemplate(id, caller, lvl)
	if !ok {
		return suppressed
	}

	msg := fmt.Sprintf("'%s' %T? expecting %s (%s)", id, obj, expected, caller)

	return l.record(lvl, msg)
}

// MissingKey logs a template "missing key" diagnostic and returns res:
//
//	Missing 'ratio' key in gross roof area (roofArea)
//
// Nothing is logged when dct is not a map or already holds key. res is
// returned in every case.
func MissingKey[T any](l *Logger, id string, dct any, key any, caller string, lvl Level, res T) T {
	if l != nil {
		l.missingKey(id, dct, key, caller, lvl)
	}

	return res
}

func (l *Logger) missingKey(id string, dct any, key any, caller string, lvl Level) outcome {
	v := reflect.ValueOf(dct)
	if !v.IsValid() || v.Kind() != reflect.Map {
		return suppressed
	}

	if kv := reflect.ValueOf(key); kv.IsValid() && kv.Type().AssignableTo(v.Type().Key()) {
		if v.MapIndex(kv).IsValid() {
			return suppressed
		}
	}

	id, caller, ok := checkTemplate(id, caller, lvl)
	if !ok {
		return suppressed
	}

	msg := fmt.Sprintf("Missing '%s' key in %s (%s)", Trim(fmt.Sprint(key)), id, caller)

	return l.record(lvl, msg)
}

// Empty logs a template "empty value" diagnostic and returns res:
//
//	Empty 'space surfaces' (exteriorSurfaces)
func Empty[T any](l *Logger, id, caller string, lvl Level, res T) T {
	if l != nil {
		l.template("Empty", id, caller, lvl)
	}

	return res
}

// Zero logs a template "zero value" diagnostic and returns res:
//
//	Zero 'wall area' (glazingRatio)
func Zero[T any](l *Logger, id, caller string, lvl Level, res T) T {
	if l != nil {
		l.template("Zero", id, caller, lvl)
	}

	return res
}

// Negative logs a template "negative value" diagnostic and returns res:
//
//	Negative 'floor-to-ceiling height' (addInternalMass)
func Negative[T any](l *Logger, id, caller string, lvl Level, res T) T {
	if l != nil {
		l.template("Negative", id, caller, lvl)
	}

	return res
}

func (l *Logger) template(kind, id, caller string, lvl Level) outcome {
	id, caller, ok := checkTemplate(id, caller, lvl)
	if !ok {
		return suppressed
	}

	return l.record(lvl, fmt.Sprintf("%s '%s' (%s)", kind, id, caller))
}

// record funnels builder messages into the sink, reduced to an outcome.
func (l *Logger) record(lvl Level, msg string) outcome {
	if _, stored := l.log(lvl, msg); stored {
		return recorded
	}

	return suppressed
}
