// Package article 提供文章生成的用例编排
package article

import (
	"fmt"
	"strings"
)

// PromptPair 系统指令与用户指令的组合
//
// 由请求和考试配置确定性派生，构建后不可变，恰好被一次补全调用消费。
type PromptPair struct {
	System string
	User   string
}

// TemplateInput 模板构建的输入参数，均已通过校验
type TemplateInput struct {
	ExamType       string
	Topic          string
	Difficulty     string
	WordCount      int
	ParagraphCount int
	Style          string
	FocusPoints    []string
}

// TemplateBuilder 将校验后的请求转换为提示词对
type TemplateBuilder struct{}

// NewTemplateBuilder 创建模板构建器
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{}
}

// systemSkeleton 通用骨架，按考试类型填充专属指令与内容要求
const systemSkeleton = `Generate a %s reading passage about %s of approximately %d words,
targeted at a difficulty level of %s.

Structure the text into %d clear paragraphs with content appropriate for %s test format.

%s

The article should include:
%s`

// examInstructions 各考试类型的写作指令，手工维护
//
// 未配置专属指令的考试类型仍可构建，只是不追加该段落。
var examInstructions = map[string]string{
	"TOEIC": "Use vocabulary and grammar patterns typical of TOEIC Part VII. Focus on realistic workplace and daily life scenarios. Avoid overly specialized technical terms and ensure the content is appropriate for business English learners.",
	"GRE":   "Use sophisticated vocabulary and complex sentence structures typical of GRE reading comprehension. Present academic arguments with logical reasoning and evidence-based conclusions.",
	"IELTS": "Use clear, well-structured prose appropriate for IELTS Academic Reading. Balance accessibility with intellectual rigor, covering the topic in a comprehensive yet approachable manner.",
	"SAT":   "Create content suitable for SAT Reading passages, focusing on analytical reasoning and evidence-based thinking expected of college-bound students.",
}

// examRequirements 各考试类型的内容要求，%s 为主题占位
var examRequirements = map[string]string{
	"TOEIC": `- Clear topic sentences for each paragraph
- Practical business vocabulary appropriate for the topic
- Realistic scenarios related to %s
- Appropriate sentence complexity for the target TOEIC level
- Professional tone suitable for workplace contexts`,
	"GRE": `- Academic vocabulary and terminology relevant to %s
- Complex sentence structures with varied syntax
- Logical argument development with supporting evidence
- Analytical depth appropriate for graduate-level study
- Formal academic tone and style`,
	"IELTS": `- Clear main ideas with supporting details
- Varied vocabulary relevant to %s
- Logical paragraph structure with smooth transitions
- Balanced presentation of different perspectives
- International English style avoiding regional idioms`,
	"SAT": `- College-level vocabulary in context
- Clear argumentative or informational structure
- Evidence-based reasoning and examples
- Appropriate complexity for high school students
- Formal but accessible academic tone`,
}

// Build 构建提示词对
//
// 完全确定性：相同输入总是产生字节级相同的输出。
func (b *TemplateBuilder) Build(in TemplateInput) PromptPair {
	instructions := examInstructions[in.ExamType]

	requirements := examRequirements[in.ExamType]
	if requirements != "" {
		requirements = fmt.Sprintf(requirements, in.Topic)
	}

	system := fmt.Sprintf(systemSkeleton,
		in.ExamType, in.Topic, in.WordCount, in.Difficulty,
		in.ParagraphCount, in.ExamType,
		instructions, requirements,
	)

	if in.Style != "" {
		system += fmt.Sprintf("\n- 寫作風格：%s", in.Style)
	}

	user := fmt.Sprintf("請生成一篇關於「%s」的 %s 考試文章。", in.Topic, in.ExamType)

	if len(in.FocusPoints) > 0 {
		user += fmt.Sprintf("\n\n請特別關注以下要點：%s", strings.Join(in.FocusPoints, "、"))
	}

	// 始终要求只输出正文，不带标题或说明
	user += "\n\n請直接輸出文章內容，不需要標題或額外說明。"

	return PromptPair{
		System: system,
		User:   user,
	}
}
