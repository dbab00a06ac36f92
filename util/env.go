package util

import (
	"errors"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/model"
	"github.com/tektronix/lib-trial-license-go/pkg"
)

func ValidateEnvVariables(cfg *model.Config, l log.Logger) error {
	if cfg == nil {
		return errors.New("trial license config is nil")
	}

	if commons.IsNilOrEmpty(&cfg.Vendor) {
		err := pkg.ValidateBusinessError(cn.ErrInvalidVendor, "", cn.EnvVendor)

		l.Error(err.Error())

		return err
	}

	if commons.IsNilOrEmpty(&cfg.Product) {
		err := pkg.ValidateBusinessError(cn.ErrInvalidProduct, "", cn.EnvProduct)

		l.Error(err.Error())

		return err
	}

	return nil
}
