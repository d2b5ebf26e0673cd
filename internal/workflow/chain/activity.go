// Package chain 提供基于 Eino 的生成工作流
package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	wfmodel "z-lesson-ai-api/internal/workflow/model"
	workflowport "z-lesson-ai-api/internal/workflow/port"
	workflowprompt "z-lesson-ai-api/internal/workflow/prompt"
	apperrors "z-lesson-ai-api/pkg/errors"
)

// ActivityChain 单次生成调用的工作流：模板渲染 -> LLM 调用。
// 所有活动类型共用一条链，模板由输入里的 PromptID 决定。
type ActivityChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.ActivityGenerateInput, *schema.Message]
	chainErr  error
}

func NewActivityChain(factory workflowport.ChatModelFactory) *ActivityChain {
	return &ActivityChain{factory: factory}
}

// Invoke 执行一次生成调用，返回模型原始消息。
// 前置条件：生成能力必须已配置，否则立即失败，不重试。
func (c *ActivityChain) Invoke(ctx context.Context, in *wfmodel.ActivityGenerateInput) (*schema.Message, error) {
	if c == nil || c.factory == nil || !c.factory.Configured() {
		return nil, apperrors.ErrLLMNotConfigured
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

type activityChainState struct {
	In       *wfmodel.ActivityGenerateInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *ActivityChain) getChain() (compose.Runnable[*wfmodel.ActivityGenerateInput, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *ActivityChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.ActivityGenerateInput, *schema.Message], error) {
	chain := compose.NewChain[*wfmodel.ActivityGenerateInput, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.ActivityGenerateInput) (*activityChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			return &activityChainState{In: in}, nil
		}),
		compose.WithNodeName("activity.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *activityChainState) (*activityChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			msgs, err := formatActivityMessages(ctx, st.In)
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("activity.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *activityChainState) (*activityChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			if c.factory == nil {
				return nil, apperrors.ErrLLMNotConfigured
			}

			chatModel, err := c.factory.Get(ctx, strings.TrimSpace(st.In.Provider))
			if err != nil {
				return nil, err
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, buildActivityModelOptions(st.In)...)
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("activity.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *activityChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("activity.finalize"),
	)

	return chain.Compile(ctx)
}

var defaultPromptRegistry = workflowprompt.NewRegistry()

func formatActivityMessages(ctx context.Context, in *wfmodel.ActivityGenerateInput) ([]*schema.Message, error) {
	tpl, err := defaultPromptRegistry.ChatTemplate(in.PromptID)
	if err != nil {
		return nil, err
	}
	return tpl.Format(ctx, in.Vars)
}

func buildActivityModelOptions(in *wfmodel.ActivityGenerateInput) []model.Option {
	opts := make([]model.Option, 0, 3)
	if in == nil {
		return opts
	}

	if in.Temperature != nil {
		opts = append(opts, model.WithTemperature(*in.Temperature))
	}
	if in.MaxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*in.MaxTokens))
	}
	if strings.TrimSpace(in.Model) != "" {
		opts = append(opts, model.WithModel(strings.TrimSpace(in.Model)))
	}

	return opts
}
