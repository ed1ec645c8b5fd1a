// Package exam 提供考试类型配置及参数校验
package exam

// Rules 单个考试类型的参数边界
type Rules struct {
	TopicMinLength int `json:"topic_min_length"`
	TopicMaxLength int `json:"topic_max_length"`
	WordCountMin   int `json:"word_count_min"`
	WordCountMax   int `json:"word_count_max"`
}

// TypeConfig 单个考试类型的完整配置
//
// 进程启动时从静态文件加载一次，之后只读。
type TypeConfig struct {
	Name                  string         `json:"name"`
	FullName              string         `json:"full_name"`
	Description           string         `json:"description"`
	SupportedDifficulties []string       `json:"supported_difficulties"`
	DefaultWordCount      map[string]int `json:"default_word_count"`
	// FallbackDifficulty 字数缺省时优先使用的难度档位；
	// 为空时取 SupportedDifficulties 中第一个有默认字数的档位
	FallbackDifficulty string   `json:"fallback_difficulty"`
	ValidationRules    Rules    `json:"validation_rules"`
	WritingStyles      []string `json:"writing_styles"`
	CommonTopics       []string `json:"common_topics"`
}

// 段落数是全局约束，与考试类型无关
const (
	ParagraphCountMin     = 1
	ParagraphCountMax     = 10
	DefaultParagraphCount = 3
)
