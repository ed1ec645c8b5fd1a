package exam

import (
	"strings"
	"unicode/utf8"

	"exam-article-api/pkg/errors"
)

// 参数校验均为无副作用的纯函数。考试类型合法是其余校验的前提：
// 每个校验自行解析考试配置，考试类型非法时直接短路返回单个错误。

// ValidateExamType 归一化（去空白、转大写）并检查考试类型
func ValidateExamType(s *Store, examType string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(examType))
	if !s.Has(normalized) {
		return "", errors.NewUnsupportedExamType(normalized, s.SupportedTypes())
	}
	return normalized, nil
}

// ValidateTopic 检查主题长度是否在考试配置的边界内，返回去空白后的主题
func ValidateTopic(s *Store, examType, topic string) (string, error) {
	cfg, err := s.Get(examType)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(topic)
	length := utf8.RuneCountInString(trimmed)
	rules := cfg.ValidationRules
	if length < rules.TopicMinLength || length > rules.TopicMaxLength {
		return "", errors.NewInvalidTopic(trimmed, length, rules.TopicMinLength, rules.TopicMaxLength)
	}
	return trimmed, nil
}

// ValidateDifficulty 检查难度档位是否被该考试支持
func ValidateDifficulty(s *Store, examType, difficulty string) (string, error) {
	cfg, err := s.Get(examType)
	if err != nil {
		return "", err
	}

	trimmed := strings.TrimSpace(difficulty)
	for _, d := range cfg.SupportedDifficulties {
		if d == trimmed {
			return trimmed, nil
		}
	}
	return "", errors.NewInvalidDifficulty(examType, trimmed, cfg.SupportedDifficulties)
}

// ValidateWordCount 校验字数；缺省时解析 (考试, 难度) 的默认字数
//
// 缺省回退顺序：难度自身的默认值 -> 配置的 fallback_difficulty ->
// supported_difficulties 中第一个有默认值的档位。
func ValidateWordCount(s *Store, examType, difficulty string, wordCount *int) (int, error) {
	cfg, err := s.Get(examType)
	if err != nil {
		return 0, err
	}

	if wordCount == nil {
		return defaultWordCount(cfg, difficulty), nil
	}

	rules := cfg.ValidationRules
	if *wordCount < rules.WordCountMin || *wordCount > rules.WordCountMax {
		return 0, errors.NewInvalidWordCount(*wordCount, rules.WordCountMin, rules.WordCountMax)
	}
	return *wordCount, nil
}

func defaultWordCount(cfg TypeConfig, difficulty string) int {
	if n, ok := cfg.DefaultWordCount[difficulty]; ok {
		return n
	}
	if n, ok := cfg.DefaultWordCount[cfg.FallbackDifficulty]; ok {
		return n
	}
	for _, d := range cfg.SupportedDifficulties {
		if n, ok := cfg.DefaultWordCount[d]; ok {
			return n
		}
	}
	// 配置无任何默认值时退回区间下界
	return cfg.ValidationRules.WordCountMin
}

// ValidateParagraphCount 校验段落数；缺省时返回全局默认值
func ValidateParagraphCount(count *int) (int, error) {
	if count == nil {
		return DefaultParagraphCount, nil
	}
	if *count < ParagraphCountMin || *count > ParagraphCountMax {
		return 0, errors.NewInvalidParagraphCount(*count, ParagraphCountMin, ParagraphCountMax)
	}
	return *count, nil
}

// ValidateStyle 校验写作风格；空风格始终合法
func ValidateStyle(s *Store, examType, style string) (string, error) {
	trimmed := strings.TrimSpace(style)
	if trimmed == "" {
		return "", nil
	}

	cfg, err := s.Get(examType)
	if err != nil {
		return "", err
	}

	for _, st := range cfg.WritingStyles {
		if st == trimmed {
			return trimmed, nil
		}
	}
	return "", errors.NewInvalidStyle(examType, trimmed, cfg.WritingStyles)
}
