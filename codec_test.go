package nonneg

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"testing"
)

func TestValue_CodecInterfaces(t *testing.T) {
	var i any = Value[float64]{}
	_, ok := i.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", i)
	}
	_, ok = i.(encoding.BinaryMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.BinaryMarshaler", i)
	}
	_, ok = i.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", i)
	}
	_, ok = i.(driver.Valuer)
	if !ok {
		t.Errorf("%T does not implement driver.Valuer", i)
	}

	var p any = &Value[float64]{}
	_, ok = p.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", p)
	}
	_, ok = p.(encoding.BinaryUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.BinaryUnmarshaler", p)
	}
	_, ok = p.(json.Unmarshaler)
	if !ok {
		t.Errorf("%T does not implement json.Unmarshaler", p)
	}
	_, ok = p.(sql.Scanner)
	if !ok {
		t.Errorf("%T does not implement sql.Scanner", p)
	}
}

func TestValue_MarshalText(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{3.14, "3.14"},
		{100, "100"},
	}
	for _, tt := range tests {
		got, err := MustNew(tt.value).MarshalText()
		if err != nil {
			t.Errorf("MustNew(%v).MarshalText() failed: %v", tt.value, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("MustNew(%v).MarshalText() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestValue_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text string
			want float64
		}{
			{"0", 0},
			{"3.14", 3.14},
			{"5.5", 5.5},
		}
		for _, tt := range tests {
			var got Value[float64]
			if err := got.UnmarshalText([]byte(tt.text)); err != nil {
				t.Errorf("UnmarshalText(%q) failed: %v", tt.text, err)
				continue
			}
			if got != MustNew(tt.want) {
				t.Errorf("UnmarshalText(%q) = %q, want %q", tt.text, got, MustNew(tt.want))
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"negative": "-3.14",
			"nan":      "NaN",
			"inf":      "Inf",
			"letters":  "abc",
			"empty":    "",
		}
		for name, text := range tests {
			t.Run(name, func(t *testing.T) {
				var got Value[float64]
				if err := got.UnmarshalText([]byte(text)); err == nil {
					t.Errorf("UnmarshalText(%q) did not fail", text)
				}
			})
		}
	})
}

func TestValue_MarshalJSON(t *testing.T) {
	weight := struct {
		Kilos Value[float64] `json:"kilos"`
	}{
		Kilos: MustNew(2.5),
	}
	got, err := json.Marshal(weight)
	if err != nil {
		t.Errorf("json.Marshal(%v) failed: %v", weight, err)
	}
	want := `{"kilos":2.5}`
	if string(got) != want {
		t.Errorf("json.Marshal(%v) = %q, want %q", weight, got, want)
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var weight struct {
			Kilos Value[float64] `json:"kilos"`
		}
		if err := json.Unmarshal([]byte(`{"kilos":2.5}`), &weight); err != nil {
			t.Errorf("json.Unmarshal failed: %v", err)
		}
		if weight.Kilos != MustNew(2.5) {
			t.Errorf("json.Unmarshal -> %q, want %q", weight.Kilos, MustNew(2.5))
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"negative": `{"kilos":-2.5}`,
			"string":   `{"kilos":"2.5"}`,
			"bool":     `{"kilos":true}`,
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				var weight struct {
					Kilos Value[float64] `json:"kilos"`
				}
				if err := json.Unmarshal([]byte(data), &weight); err == nil {
					t.Errorf("json.Unmarshal(%q) did not fail", data)
				}
			})
		}
	})
}

func TestValue_MarshalBinary(t *testing.T) {
	v := MustNew(3.14)
	data, err := v.MarshalBinary()
	if err != nil {
		t.Errorf("%q.MarshalBinary() failed: %v", v, err)
	}
	var got Value[float64]
	if err := got.UnmarshalBinary(data); err != nil {
		t.Errorf("UnmarshalBinary(%q) failed: %v", data, err)
	}
	if got != v {
		t.Errorf("UnmarshalBinary(%q) = %q, want %q", data, got, v)
	}
}

func TestValue_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			src  any
			want float64
		}{
			{float64(3.14), 3.14},
			{int64(3), 3},
			{"3.14", 3.14},
			{[]byte("3.14"), 3.14},
		}
		for _, tt := range tests {
			var got Value[float64]
			if err := got.Scan(tt.src); err != nil {
				t.Errorf("Scan(%T(%v)) failed: %v", tt.src, tt.src, err)
				continue
			}
			if got != MustNew(tt.want) {
				t.Errorf("Scan(%T(%v)) = %q, want %q", tt.src, tt.src, got, MustNew(tt.want))
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"negative float": float64(-1),
			"negative int":   int64(-1),
			"letters":        "abc",
			"nil":            nil,
			"bool":           true,
		}
		for name, src := range tests {
			t.Run(name, func(t *testing.T) {
				var got Value[float64]
				if err := got.Scan(src); err == nil {
					t.Errorf("Scan(%T(%v)) did not fail", src, src)
				}
			})
		}
	})
}

func TestValue_Value(t *testing.T) {
	v := MustNew(3.14)
	got, err := v.Value()
	if err != nil {
		t.Errorf("%q.Value() failed: %v", v, err)
	}
	want := driver.Value(float64(3.14))
	if got != want {
		t.Errorf("%q.Value() = %v, want %v", v, got, want)
	}
}
