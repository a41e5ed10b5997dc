package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"przelewy/config"
	"przelewy/entity"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func TestSiteSettingsWinOverConfig(t *testing.T) {
	conf := testConfig()
	conf.Przelewy24.Crc = "from-config"
	conf.Przelewy24.MerchantId = 111
	site := &entity.MerchantSettings{Crc: "from-site", MerchantId: 222}

	settings := ResolveSettings(site, conf)

	assert.Equal(t, "from-site", settings.Crc)
	assert.Equal(t, 222, settings.MerchantId)
}

func TestConfigUsedWhenSiteEmpty(t *testing.T) {
	conf := testConfig()
	conf.Przelewy24.Crc = "from-config"
	conf.Przelewy24.PosId = 333

	settings := ResolveSettings(nil, conf)

	assert.Equal(t, "from-config", settings.Crc)
	assert.Equal(t, 333, settings.PosId)
}

func TestLegacyAliases(t *testing.T) {
	// client_id doubles for merchant_id, report_key for secret_id
	conf := testConfig()
	conf.Przelewy24.ClientId = 444
	conf.Przelewy24.ReportKey = "report-key"
	conf.Przelewy24.SandboxFallback = "false"

	settings := ResolveSettings(nil, conf)
	assert.Equal(t, 444, settings.MerchantId)

	posId, key, err := (&EffectiveSettings{PosId: 1, ReportKey: "report-key"}).AuthCredentials()
	require.NoError(t, err)
	assert.Equal(t, 1, posId)
	assert.Equal(t, "report-key", key)
}

func TestSecretIdPreferredOverReportKey(t *testing.T) {
	settings := EffectiveSettings{PosId: 1, ReportKey: "report-key", SecretId: "secret-id"}

	_, key, err := settings.AuthCredentials()
	require.NoError(t, err)
	assert.Equal(t, "secret-id", key)
}

func TestSandboxFallbackFillsMissingFields(t *testing.T) {
	settings := ResolveSettings(nil, testConfig())

	assert.NotZero(t, settings.MerchantId)
	assert.NotZero(t, settings.PosId)
	assert.NotEmpty(t, settings.Crc)
	assert.Equal(t, "https://sandbox.przelewy24.pl/api/v1/", settings.ApiUrl)

	_, _, _, err := settings.SigningCredentials()
	assert.NoError(t, err)
}

func TestDisabledFallbackFailsAtPointOfUse(t *testing.T) {
	conf := testConfig()
	conf.Przelewy24.SandboxFallback = "false"

	settings := ResolveSettings(nil, conf)

	_, _, _, err := settings.SigningCredentials()
	var configurationErr *ConfigurationError
	require.ErrorAs(t, err, &configurationErr)

	_, _, err = settings.AuthCredentials()
	require.ErrorAs(t, err, &configurationErr)

	_, err = settings.Endpoint("transaction/register")
	require.ErrorAs(t, err, &configurationErr)
}

func TestSigningCredentialsReportMissingField(t *testing.T) {
	settings := EffectiveSettings{PosId: 1, Crc: "crc"}
	_, _, _, err := settings.SigningCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merchant id")

	settings = EffectiveSettings{MerchantId: 1, PosId: 2}
	_, _, _, err = settings.SigningCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crc")
}

func TestBaseUrlNormalizedToSingleSeparator(t *testing.T) {
	conf := testConfig()
	conf.Przelewy24.ApiUrl = "https://secure.przelewy24.pl/api/v1"
	settings := ResolveSettings(nil, conf)
	assert.Equal(t, "https://secure.przelewy24.pl/api/v1/", settings.ApiUrl)

	conf.Przelewy24.ApiUrl = "https://secure.przelewy24.pl/api/v1//"
	settings = ResolveSettings(nil, conf)
	assert.Equal(t, "https://secure.przelewy24.pl/api/v1/", settings.ApiUrl)

	endpoint, err := settings.Endpoint("transaction/register")
	require.NoError(t, err)
	assert.Equal(t, "https://secure.przelewy24.pl/api/v1/transaction/register", endpoint)
}

func TestSandboxFlagResolution(t *testing.T) {
	conf := testConfig()
	conf.Przelewy24.SandboxFallback = "false"
	site := &entity.MerchantSettings{SandboxFallback: "true"}

	// site flag wins over config flag
	settings := ResolveSettings(site, conf)
	assert.True(t, settings.SandboxFallback)

	// unset everywhere defaults to enabled
	settings = ResolveSettings(nil, testConfig())
	assert.True(t, settings.SandboxFallback)
}
