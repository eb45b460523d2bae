package cmd

import (
	"bytes"
	"testing"

	controllermocks "github.com/mouse-blink/kata/internal/controller/mocks"
	domainmocks "github.com/mouse-blink/kata/internal/domain/mocks"
	m "github.com/mouse-blink/kata/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_DisplaysRegisteredSnippets(t *testing.T) {
	mockRegistry := domainmocks.NewMockRegistry(t)
	mockUI := controllermocks.NewMockUI(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalRegistry, originalUI := registry, ui
	registry, ui = mockRegistry, mockUI
	defer func() { registry, ui = originalRegistry, originalUI }()

	snippets := []m.Snippet{
		{Name: "counter", Topic: m.TopicClosures},
		{Name: "flatten", Topic: m.TopicSequences},
	}

	mockRegistry.On("Snippets").Return(snippets)
	mockUI.On("DisplayList", snippets).Return(nil)

	cmd.SetArgs([]string{"list"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
