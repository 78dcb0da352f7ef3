package arabic

import "testing"

func TestNormalize_DigitFolding(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"٢٥", "25"},
		{"۴۲", "42"},
		{"١٢٣٤٥٦٧٨٩٠", "1234567890"},
		{"25", "25"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in, Options{}); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Diacritics(t *testing.T) {
	// "مَدْرَسَة" with tashkeel normalizes same as bare "مدرسه".
	got := Normalize("مَدْرَسَة", Options{})
	want := Normalize("مدرسة", Options{})
	if got != want {
		t.Errorf("diacritics not stripped: %q vs %q", got, want)
	}
}

func TestNormalize_LetterVariants(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"أحمد", "احمد"},  // hamza above
		{"إسلام", "اسلام"}, // hamza below
		{"مدرسة", "مدرسه"}, // teh marbuta
		{"مصطفى", "مصطفي"}, // alef maksura
		{"مسؤول", "مسوول"}, // waw hamza
		{"شاطئ", "شاطي"},  // yeh hamza
	}
	for _, tt := range tests {
		if Normalize(tt.a, Options{}) != Normalize(tt.b, Options{}) {
			t.Errorf("Normalize(%q) != Normalize(%q)", tt.a, tt.b)
		}
	}
}

func TestNormalize_AlStripping(t *testing.T) {
	if got, want := Normalize("الرياض", Options{}), Normalize("رياض", Options{}); got != want {
		t.Errorf("al not stripped: %q vs %q", got, want)
	}
	// KeepAl preserves the article.
	a := Normalize("الرياض", Options{KeepAl: true})
	b := Normalize("رياض", Options{KeepAl: true})
	if a == b {
		t.Error("KeepAl should preserve the article")
	}
}

func TestNormalize_PunctuationAndWhitespace(t *testing.T) {
	got := Normalize("  ما   هي، العاصمة؟ ", Options{KeepAl: true})
	want := "ما هي العاصمه"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize_Lowercase(t *testing.T) {
	if got := Normalize("Riyadh", Options{}); got != "riyadh" {
		t.Errorf("got %q, want %q", got, "riyadh")
	}
}

func TestFoldDigits(t *testing.T) {
	if got := FoldDigits("٣/٤"); got != "3/4" {
		t.Errorf("FoldDigits = %q, want %q", got, "3/4")
	}
	if got := FoldDigits("abc"); got != "abc" {
		t.Errorf("FoldDigits should leave non-digits alone, got %q", got)
	}
}

func TestStripAl(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"الرياض", "رياض"},
		{"رياض", "رياض"},
		{"ال", "ال"}, // bare article stays
	}
	for _, tt := range tests {
		if got := StripAl(tt.in); got != tt.want {
			t.Errorf("StripAl(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
