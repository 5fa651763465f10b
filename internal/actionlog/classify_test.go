package actionlog

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		modelType string
		expected  Category
	}{
		{
			name:      "Text generation",
			modelType: "TEXT_LARGE",
			expected:  CategoryLLM,
		},
		{
			name:      "Object generation",
			modelType: "OBJECT_SMALL",
			expected:  CategoryLLM,
		},
		{
			name:      "Text embedding",
			modelType: "TEXT_EMBEDDING",
			expected:  CategoryEmbedding,
		},
		{
			name:      "Transcription",
			modelType: "TRANSCRIPTION",
			expected:  CategoryTranscription,
		},
		{
			name:      "Text transcription variant",
			modelType: "TEXT_TRANSCRIPTION",
			expected:  CategoryTranscription,
		},
		{
			name:      "Image generation",
			modelType: "IMAGE_GENERATION",
			expected:  CategoryImage,
		},
		{
			name:      "Image description",
			modelType: "IMAGE_DESCRIPTION",
			expected:  CategoryImage,
		},
		{
			name:      "Custom tool",
			modelType: "CUSTOM_TOOL",
			expected:  CategoryOther,
		},
		{
			name:      "Empty string",
			modelType: "",
			expected:  CategoryOther,
		},
		{
			name:      "Lowercase input",
			modelType: "text_large",
			expected:  CategoryLLM,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.modelType); got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.modelType, got, tt.expected)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Any input maps to exactly one of the six labels.
	inputs := []string{"", "garbage", "TEXT", "OBJECT", "EMBEDDING", "IMAGE", "TRANSCRIPTION", "TEXT_EMBEDDING_IMAGE", "123", "ボイス"}
	for _, in := range inputs {
		c := Classify(in)
		if c < CategoryUnknown || c > CategoryOther {
			t.Errorf("Classify(%q) = %d, outside category range", in, c)
		}
		if c.String() == "" {
			t.Errorf("Classify(%q).String() is empty", in)
		}
	}
}
