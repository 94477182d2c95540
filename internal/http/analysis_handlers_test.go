package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"perflog-analytics/internal/analyzers/mocks"
	"perflog-analytics/internal/models"
	"perflog-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMaxUploadBytes = 1024

func sampleBandwidthReport() *models.BandwidthReport {
	socket := "0"
	return &models.BandwidthReport{
		AnalysisID: "01JGB7Y1N3Q4WQ6F9V7C4S2M8K",
		Digest:     "9f86d081884c7d65",
		Dimensions: models.BandwidthDimensions{Sockets: []string{"socket0"}, Mcs: []string{"0"}, Chs: []string{"0"}},
		Filter:     models.BandwidthFilter{Sockets: []string{}, Mcs: []string{"0"}, Chs: []string{}},
		Samples: []models.BandwidthSample{
			{LineNumber: 4, Socket: "socket0", Mc: "0", Ch: "0", Read: 12.5, Write: 6.25, Req: 20, SampleNumber: 1, SocketNumber: &socket},
		},
		Statistics: []models.BandwidthStatistics{
			{Mc: "0", Ch: "0", SampleCount: 1, MinRead: 12.5, MaxRead: 12.5, AvgRead: 12.5, P95Read: 12.5},
		},
	}
}

func TestBandwidthFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected models.BandwidthFilter
	}{
		{
			name:     "no parameters",
			query:    "",
			expected: models.BandwidthFilter{},
		},
		{
			name:  "repeated parameters",
			query: "socket=socket0&mc=0&mc=1&ch=0",
			expected: models.BandwidthFilter{
				Sockets: []string{"socket0"},
				Mcs:     []string{"0", "1"},
				Chs:     []string{"0"},
			},
		},
		{
			name:     "unrelated parameters are ignored",
			query:    "format=yaml&mc=Total",
			expected: models.BandwidthFilter{Mcs: []string{"Total"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bandwidthFilter(query))
		})
	}
}

func TestMcUtilsReportHandler_JSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalysisService(ctrl)
	service.EXPECT().
		AnalyzeMcUtils(gomock.Any(), gomock.Any(), "text/plain", models.BandwidthFilter{Mcs: []string{"0"}}).
		DoAndReturn(func(ctx context.Context, r io.Reader, contentType string, filter models.BandwidthFilter) (*models.BandwidthReport, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "log body", string(body))
			return sampleBandwidthReport(), nil
		})

	handler := errorHandlingAdapter(NewMcUtilsReportHandler(service, testMaxUploadBytes))
	req := httptest.NewRequest(http.MethodPost, "/analyses/mcutils?mc=0", strings.NewReader("log body"))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, mediaTypeJSON, rr.Header().Get("Content-Type"))

	var report models.BandwidthReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, *sampleBandwidthReport(), report)
}

func TestMcUtilsReportHandler_YAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
	}{
		{name: "format parameter", target: "/analyses/mcutils?format=yaml"},
		{name: "format parameter is case insensitive", target: "/analyses/mcutils?format=YAML"},
		{name: "accept header", target: "/analyses/mcutils", accept: "application/yaml"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := mocks.NewMockAnalysisService(ctrl)
			service.EXPECT().
				AnalyzeMcUtils(gomock.Any(), gomock.Any(), "", models.BandwidthFilter{}).
				Return(sampleBandwidthReport(), nil)

			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader("log"))
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rr := httptest.NewRecorder()
			errorHandlingAdapter(NewMcUtilsReportHandler(service, testMaxUploadBytes)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, mediaTypeYAML, rr.Header().Get("Content-Type"))
			body := rr.Body.String()
			assert.True(t, strings.HasPrefix(body, "analysisId: 01JGB7Y1N3Q4WQ6F9V7C4S2M8K\n"), body)
			assert.Contains(t, body, "digest: 9f86d081884c7d65\n")
			assert.Contains(t, body, "read: 12.5\n")
			assert.Contains(t, body, `socketNumber: "0"`)
		})
	}
}

func TestMcUtilsReportHandler_AcceptJSONWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalysisService(ctrl)
	service.EXPECT().
		AnalyzeMcUtils(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleBandwidthReport(), nil)

	req := httptest.NewRequest(http.MethodPost, "/analyses/mcutils", strings.NewReader("log"))
	req.Header.Set("Accept", "application/json, application/yaml")
	rr := httptest.NewRecorder()
	errorHandlingAdapter(NewMcUtilsReportHandler(service, testMaxUploadBytes)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, mediaTypeJSON, rr.Header().Get("Content-Type"))
}

func TestMcUtilsReportHandler_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalysisService(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/analyses/mcutils?format=xml", strings.NewReader("log"))
	rr := httptest.NewRecorder()
	errorHandlingAdapter(NewMcUtilsReportHandler(service, testMaxUploadBytes)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, codeUnsupportedFormat, errorResponse.ErrorCode)
	assert.Equal(t, "invalid_argument", errorResponse.ErrorCategory)
	assert.Contains(t, errorResponse.ErrorDescription, `"xml"`)
}

func TestMcUtilsReportHandler_BodyLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalysisService(ctrl)
	service.EXPECT().
		AnalyzeMcUtils(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r io.Reader, contentType string, filter models.BandwidthFilter) (*models.BandwidthReport, error) {
			_, err := io.ReadAll(r)
			var maxBytesErr *http.MaxBytesError
			require.ErrorAs(t, err, &maxBytesErr)
			assert.Equal(t, int64(testMaxUploadBytes+multipartOverhead), maxBytesErr.Limit)
			return nil, svcerrors.NewPayloadTooLargeError("ANA_1001", "log too large", err)
		})

	body := strings.NewReader(strings.Repeat("x", testMaxUploadBytes+multipartOverhead+1))
	req := httptest.NewRequest(http.MethodPost, "/analyses/mcutils", body)
	rr := httptest.NewRecorder()
	errorHandlingAdapter(NewMcUtilsReportHandler(service, testMaxUploadBytes)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestEthtoolReportHandler(t *testing.T) {
	t.Parallel()

	mtu := uint64(1500)
	report := &models.NetworkReport{
		AnalysisID: "01JGB7Y1N3Q4WQ6F9V7C4S2M8K",
		Digest:     "9f86d081884c7d65",
		NetworkSections: models.NetworkSections{
			Interfaces: []models.InterfaceRecord{{Port: "eth0", MTU: &mtu}},
			PacketSizes: models.PacketSizeHistogram{
				RX: models.SizeBuckets{{Label: "64", Count: 10}},
				TX: models.SizeBuckets{},
			},
			LinkStatistics: models.LinkStatistics{"rx_bytes": 204800},
		},
	}

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"analysisId": "01JGB7Y1N3Q4WQ6F9V7C4S2M8K",
				"digest": "9f86d081884c7d65",
				"interfaces": [{
					"port": "eth0", "ip": null, "mac": null, "mtu": 1500, "speed": null, "duplex": null,
					"linkDetected": null, "rxPackets": null, "rxBytes": null, "rxErrors": null,
					"txPackets": null, "txBytes": null, "txErrors": null
				}],
				"packetSizes": {"rx": [{"label": "64", "count": 10}], "tx": []},
				"linkStatistics": {"rx_bytes": 204800}
			}`,
		},
		{
			name:           "unsupported media type",
			serviceErr:     svcerrors.NewUnsupportedMediaTypeError("ANA_1002", "unsupported content type", nil),
			expectedStatus: http.StatusUnsupportedMediaType,
			expectedBody: `{
				"requestId": "",
				"errorCategory": "unsupported_media_type",
				"errorCode": "ANA_1002",
				"errorDescription": "unsupported content type"
			}`,
		},
		{
			name:           "internal error",
			serviceErr:     svcerrors.NewInternalError("ANA_9000", assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			expectedBody: `{
				"requestId": "",
				"errorCategory": "internal",
				"errorCode": "ANA_9000",
				"errorDescription": "internal server error"
			}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := mocks.NewMockAnalysisService(ctrl)
			call := service.EXPECT().AnalyzeEthtool(gomock.Any(), gomock.Any(), "application/octet-stream")
			if tt.serviceErr != nil {
				call.Return(nil, tt.serviceErr)
			} else {
				call.Return(report, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/analyses/ethtool", strings.NewReader("eth0: flags=4163<UP>  mtu 1500"))
			req.Header.Set("Content-Type", "application/octet-stream")
			rr := httptest.NewRecorder()
			errorHandlingAdapter(NewEthtoolReportHandler(service, testMaxUploadBytes)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
