package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/dto"
)

const (
	msgEmptySelection = "선택한 조건에 맞는 데이터가 없습니다."
	msgEmptyDataset   = "표시할 데이터가 없습니다."
	msgNoStatistics   = "통계 값을 계산할 수 없습니다."
)

// loadFailureNotice maps a terminal dataset error to the message shown instead of the dashboard.
func loadFailureNotice(err error, source string) (int, *dto.Notice) {
	switch {
	case errors.Is(err, apperrors.ErrFileNotFound):
		return http.StatusServiceUnavailable, &dto.Notice{
			Level:   dto.NoticeError,
			Message: "❌ 파일을 찾을 수 없습니다: " + source,
			Hint:    "같은 폴더에 csv 파일이 있는지 확인해주세요.",
		}
	case errors.Is(err, apperrors.ErrDecodeFailure):
		return http.StatusServiceUnavailable, &dto.Notice{
			Level:   dto.NoticeError,
			Message: "❌ 파일의 인코딩을 읽을 수 없습니다: " + source,
			Hint:    "UTF-8 또는 CP949/EUC-KR로 저장된 csv 파일인지 확인해주세요.",
		}
	case errors.Is(err, apperrors.ErrMalformedTable):
		return http.StatusServiceUnavailable, &dto.Notice{
			Level:   dto.NoticeError,
			Message: "❌ 데이터 형식이 올바르지 않습니다: " + source,
			Hint:    "통계표 내려받기 형식(계정항목, 측정항목, YYYY/MM 열)의 csv 파일인지 확인해주세요.",
		}
	default:
		return http.StatusInternalServerError, &dto.Notice{
			Level:   dto.NoticeError,
			Message: "❌ 데이터를 불러오지 못했습니다.",
		}
	}
}
