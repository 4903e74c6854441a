package orchestrator

import (
	"fmt"

	"github.com/unowned-ai/confide/pkg/completion"
	"github.com/unowned-ai/confide/pkg/moods"
)

var stylePrompts = map[moods.StyleValue]string{
	moods.Friend:    "请以温暖亲切的朋友语气回复，就像好朋友之间的聊天一样自然。",
	moods.Counselor: "请以专业的心理咨询师角度回复，提供建设性的建议和理性分析。",
	moods.Zen:       "请以淡然智慧的佛系语气回复，帮助用户放下执念，看淡得失。",
	moods.Gentle:    "请以温柔治愈的语气回复，给予温暖的安慰和支持。",
}

const systemTemplate = `你是一个温暖、善解人意的AI伙伴，专门帮助用户处理情绪和心理状态。

当前用户的情绪状态：%s %s

回复要求：
1. %s
2. 回复要有同理心，真正理解用户的感受
3. 提供实用的建议或安慰
4. 语言要自然、温暖，避免过于正式
5. 长度控制在100-300字之间
6. 不要提及"我是AI"等字眼，让对话更自然
7. 根据情绪适当调整回复的深度和方向

请直接给出回复，不要有多余的解释。`

// StylePrompt returns the instruction fragment for style. ok is false when the
// style is unknown and the friend fragment was used instead.
func StylePrompt(style moods.StyleValue) (prompt string, ok bool) {
	if p, found := stylePrompts[style]; found {
		return p, true
	}
	return stylePrompts[moods.Friend], false
}

// BuildRequest composes the completion request for content written in mood and
// answered in style. The user message is content verbatim.
func BuildRequest(content string, mood moods.MoodTag, style moods.StyleValue) (completion.Request, bool) {
	stylePrompt, ok := StylePrompt(style)
	return completion.Request{
		SystemInstruction: fmt.Sprintf(systemTemplate, mood.Label, mood.Emoji, stylePrompt),
		UserMessage:       content,
	}, ok
}
