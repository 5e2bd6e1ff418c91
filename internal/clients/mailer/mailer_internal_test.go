package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/pkg/config"
)

func TestResolveContentType(t *testing.T) {
	t.Parallel()

	require.Equal(t, ContentTypeHTML, resolveContentType("", "<p>hi</p>"))
	require.Equal(t, ContentTypePlain, resolveContentType("", "hi"))
	require.Equal(t, ContentTypePlain, resolveContentType(ContentTypePlain, "<p>hi</p>"))
}

func TestSendMessage_NotConfigured(t *testing.T) {
	t.Parallel()

	err := New(config.MailerConfig{}).SendMessage("subject", "body", []string{"a@example.test"}, "")
	require.ErrorIs(t, err, ErrNotConfigured)
}
