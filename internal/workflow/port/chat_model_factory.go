package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 定义工作流层对 LLM ChatModel 的最小依赖（port）。
type ChatModelFactory interface {
	// Configured 判断生成能力是否已配置；未配置时任何生成调用都应立即失败
	Configured() bool

	Get(ctx context.Context, name string) (model.BaseChatModel, error)
}
