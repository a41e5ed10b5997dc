package internal

import (
	"przelewy/config"
	"przelewy/entity"
	"strings"
)

const defaultApiUrl = "https://sandbox.przelewy24.pl/api/v1/"

// Built-in sandbox account, used only when the sandbox fallback is enabled
// and neither site settings nor process configuration supply a value.
const (
	sandboxMerchantId = 64195
	sandboxPosId      = 64195
	sandboxCrc        = "d5e8ff72c72ba3b4"
	sandboxReportKey  = "7f2a54d2c6b0e95a8c41d07e913f8b26"
)

// EffectiveSettings is the credential and endpoint set used for a single
// provider call. It is rebuilt per call by the resolver and never cached, so
// concurrent callers with different site settings do not interfere.
type EffectiveSettings struct {
	ClientId        int
	MerchantId      int
	PosId           int
	Crc             string
	ReportKey       string
	SecretId        string
	ApiUrl          string
	SandboxFallback bool
}

// ResolveSettings layers the three credential sources in priority order:
// site-level settings, process configuration, built-in sandbox constants.
// Process configuration accepts legacy key aliases: client id doubles for
// merchant id and report key for secret id, resolved here so the rest of the
// service never sees the aliases.
//
// Nothing is validated eagerly; operations check the fields they need via
// SigningCredentials and AuthCredentials, because not every operation needs
// every field.
func ResolveSettings(site *entity.MerchantSettings, conf *config.Config) EffectiveSettings {
	if site == nil {
		site = &entity.MerchantSettings{}
	}

	settings := EffectiveSettings{
		SandboxFallback: resolveFlag(site.SandboxFallback, conf.Przelewy24.SandboxFallback, true),
	}

	settings.ClientId = firstInt(site.ClientId, conf.Przelewy24.ClientId)
	settings.MerchantId = firstInt(site.MerchantId, conf.Przelewy24.MerchantId, conf.Przelewy24.ClientId)
	settings.PosId = firstInt(site.PosId, conf.Przelewy24.PosId)
	settings.Crc = firstString(site.Crc, conf.Przelewy24.Crc)
	settings.ReportKey = firstString(site.ReportKey, conf.Przelewy24.ReportKey)
	settings.SecretId = firstString(site.SecretId, conf.Przelewy24.SecretId)
	settings.ApiUrl = firstString(site.ApiUrl, conf.Przelewy24.ApiUrl)

	if settings.SandboxFallback {
		settings.MerchantId = firstInt(settings.MerchantId, sandboxMerchantId)
		settings.PosId = firstInt(settings.PosId, sandboxPosId)
		settings.Crc = firstString(settings.Crc, sandboxCrc)
		settings.ReportKey = firstString(settings.ReportKey, sandboxReportKey)
		settings.ApiUrl = firstString(settings.ApiUrl, defaultApiUrl)
	}

	settings.ApiUrl = normalizeUrl(settings.ApiUrl)

	return settings
}

// SigningCredentials returns the fields required to sign register and verify
// requests, failing at the point of use when one is absent.
func (s *EffectiveSettings) SigningCredentials() (merchantId int, posId int, crc string, err error) {
	if s.MerchantId == 0 {
		return 0, 0, "", &ConfigurationError{Field: "merchant id"}
	}
	if s.PosId == 0 {
		return 0, 0, "", &ConfigurationError{Field: "pos id"}
	}
	if s.Crc == "" {
		return 0, 0, "", &ConfigurationError{Field: "crc key"}
	}
	return s.MerchantId, s.PosId, s.Crc, nil
}

// AuthCredentials returns the Basic authentication pair. The secret id is
// preferred over the report key when both are configured, matching observed
// provider behaviour.
func (s *EffectiveSettings) AuthCredentials() (posId int, key string, err error) {
	if s.PosId == 0 {
		return 0, "", &ConfigurationError{Field: "pos id"}
	}
	key = s.SecretId
	if key == "" {
		key = s.ReportKey
	}
	if key == "" {
		return 0, "", &ConfigurationError{Field: "report key or secret id"}
	}
	return s.PosId, key, nil
}

func (s *EffectiveSettings) Endpoint(path string) (string, error) {
	if s.ApiUrl == "" {
		return "", &ConfigurationError{Field: "api url"}
	}
	return s.ApiUrl + path, nil
}

// normalizeUrl keeps exactly one trailing separator so endpoint paths can be
// appended directly.
func normalizeUrl(url string) string {
	if url == "" {
		return ""
	}
	return strings.TrimRight(url, "/") + "/"
}

// resolveFlag follows the same precedence as the credential fields. The flag
// is stored as a string so that "not set" can be told apart from "false".
func resolveFlag(site string, conf string, fallback bool) bool {
	value := firstString(site, conf)
	if value == "" {
		return fallback
	}
	return value == "true" || value == "1" || value == "yes"
}

func firstInt(values ...int) int {
	for _, value := range values {
		if value != 0 {
			return value
		}
	}
	return 0
}

func firstString(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
