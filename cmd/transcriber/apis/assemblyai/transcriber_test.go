package assemblyai

import (
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/stretchr/testify/require"
)

func TestConfigIsValid(t *testing.T) {
	tcs := []struct {
		name          string
		cfg           Config
		expectedError string
	}{
		{
			name:          "empty config",
			cfg:           Config{},
			expectedError: "invalid empty config",
		},
		{
			name: "missing APIKey",
			cfg: Config{
				LanguageCode: "en",
			},
			expectedError: "invalid APIKey: should not be empty",
		},
		{
			name: "valid config",
			cfg: Config{
				APIKey: "4ec21d17a9c94f66b6df75c731e0a2b1",
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.IsValid()
			if tc.expectedError == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.expectedError)
			}
		})
	}
}

func TestNewTranscriber(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		tr, err := NewTranscriber(Config{})
		require.Error(t, err)
		require.Nil(t, tr)
	})

	t.Run("valid config", func(t *testing.T) {
		tr, err := NewTranscriber(Config{APIKey: "4ec21d17a9c94f66b6df75c731e0a2b1"})
		require.NoError(t, err)
		require.NotNil(t, tr)
	})
}

func TestParams(t *testing.T) {
	t.Run("automatic language detection", func(t *testing.T) {
		tr, err := NewTranscriber(Config{APIKey: "4ec21d17a9c94f66b6df75c731e0a2b1"})
		require.NoError(t, err)

		params := tr.params()
		require.NotNil(t, params.LanguageDetection)
		require.True(t, *params.LanguageDetection)
		require.Empty(t, params.LanguageCode)
		require.Equal(t, aai.SpeechModelBest, params.SpeechModel)
	})

	t.Run("fixed language code", func(t *testing.T) {
		tr, err := NewTranscriber(Config{
			APIKey:       "4ec21d17a9c94f66b6df75c731e0a2b1",
			LanguageCode: "pt",
		})
		require.NoError(t, err)

		params := tr.params()
		require.Nil(t, params.LanguageDetection)
		require.Equal(t, aai.TranscriptLanguageCode("pt"), params.LanguageCode)
		require.Equal(t, aai.SpeechModelBest, params.SpeechModel)
	})
}
