package reportHandler

import (
	contextPkg "HotelGolang/pkg/context"
	"HotelGolang/pkg/handlerUtil"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReportHandler) HandleGetSalesReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	document, err := h.reportService.GenerateSalesReport(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "generate_sales_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		fileName := fmt.Sprintf("sales-report-%s.pdf", time.Now().Format("2006-01-02"))
		ctx.Set(fiber.HeaderContentType, "application/pdf")
		ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
		return ctx.Status(fiber.StatusOK).Send(document)
	}
}
