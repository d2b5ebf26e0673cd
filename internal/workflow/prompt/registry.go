package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptQuizV1          PromptID = "quiz_v1"
	PromptExerciseV1      PromptID = "exercise_v1"
	PromptPracticalTaskV1 PromptID = "practical_task_v1"
	PromptReflectionV1    PromptID = "reflection_v1"
	PromptMetadataV1      PromptID = "metadata_v1"
)

type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]einoprompt.ChatTemplate),
	}
}

func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	systemPath, userPath, err := resolvePromptFiles(id)
	if err != nil {
		return nil, err
	}
	system, err := readEmbeddedText(systemPath)
	if err != nil {
		return nil, err
	}
	user, err := readEmbeddedText(userPath)
	if err != nil {
		return nil, err
	}

	tpl := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(system),
		schema.UserMessage(user),
	)
	r.cache[id] = tpl
	return tpl, nil
}

func resolvePromptFiles(id PromptID) (systemFile string, userFile string, err error) {
	switch id {
	case PromptQuizV1:
		return "templates/quiz_v1.system.txt", "templates/quiz_v1.user.txt", nil
	case PromptExerciseV1:
		return "templates/exercise_v1.system.txt", "templates/exercise_v1.user.txt", nil
	case PromptPracticalTaskV1:
		return "templates/practical_task_v1.system.txt", "templates/practical_task_v1.user.txt", nil
	case PromptReflectionV1:
		return "templates/reflection_v1.system.txt", "templates/reflection_v1.user.txt", nil
	case PromptMetadataV1:
		return "templates/metadata_v1.system.txt", "templates/metadata_v1.user.txt", nil
	default:
		return "", "", fmt.Errorf("unknown prompt id: %s", id)
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
