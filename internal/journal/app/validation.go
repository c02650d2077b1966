package app

import (
	"net/mail"
	"strings"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/domain/services"
)

const (
	reasonRequired          = "must not be empty"
	reasonEmptyTag          = "tags must not contain empty values"
	reasonUnknownDifficulty = "must be one of beginner, intermediate, advanced"
	reasonPasswordShort     = "must be at least 6 characters"
	reasonInvalidEmail      = "must be a valid email address"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return services.NewFieldError(field, reasonRequired)
	}
	return nil
}

// optionalText проверяет только переданные поля.
func optionalText(field string, value entities.Optional[string]) error {
	if v, ok := value.Get(); ok {
		return requireText(field, v)
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return services.NewFieldError("tags", reasonEmptyTag)
		}
	}
	return nil
}

func validateDifficulty(d entities.Difficulty) error {
	if !d.Valid() {
		return services.NewFieldError("difficulty", reasonUnknownDifficulty)
	}
	return nil
}

func validateEmail(email *string) error {
	if email == nil || *email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(*email); err != nil {
		return services.NewFieldError("email", reasonInvalidEmail)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func validateInsightInput(in entities.InsightInput) error {
	return firstError(
		requireText("title", in.Title),
		requireText("excerpt", in.Excerpt),
		requireText("content", in.Content),
		validateTags(in.Tags),
	)
}

func validateInsightPatch(p entities.InsightPatch) error {
	var tagsErr error
	if tags, ok := p.Tags.Get(); ok {
		tagsErr = validateTags(tags)
	}
	return firstError(
		optionalText("title", p.Title),
		optionalText("excerpt", p.Excerpt),
		optionalText("content", p.Content),
		tagsErr,
	)
}

func validateDiaryInput(in entities.DiaryEntryInput) error {
	return firstError(
		requireText("title", in.Title),
		requireText("content", in.Content),
		validateTags(in.Tags),
	)
}

func validateDiaryPatch(p entities.DiaryEntryPatch) error {
	var tagsErr error
	if tags, ok := p.Tags.Get(); ok {
		tagsErr = validateTags(tags)
	}
	return firstError(
		optionalText("title", p.Title),
		optionalText("content", p.Content),
		tagsErr,
	)
}

func validateTutorialInput(in entities.TutorialInput) error {
	return firstError(
		requireText("title", in.Title),
		requireText("description", in.Description),
		requireText("content", in.Content),
		requireText("language", in.Language),
		validateDifficulty(in.Difficulty),
		requireText("duration", in.Duration),
	)
}

func validateTutorialPatch(p entities.TutorialPatch) error {
	var diffErr error
	if d, ok := p.Difficulty.Get(); ok {
		diffErr = validateDifficulty(d)
	}
	return firstError(
		optionalText("title", p.Title),
		optionalText("description", p.Description),
		optionalText("content", p.Content),
		optionalText("language", p.Language),
		diffErr,
		optionalText("duration", p.Duration),
	)
}
