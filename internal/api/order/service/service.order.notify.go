package ordersvc

import (
	"fmt"
	"strings"

	models "cellic_store/internal/api/order/models"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// sendOrderNotification gửi email thông báo đơn hàng mới đến admin.
// Tắt khi SMTP hoặc CONTACT_NOTIFY_EMAIL chưa được cấu hình.
func (s *OrderService) sendOrderNotification(order *models.Order, items []models.OrderItem) {
	cfg := global.ServerConfig
	if cfg == nil || cfg.SMTPHost == "" || cfg.ContactNotifyEmail == "" {
		logrus.Debug("sendOrderNotification: SMTP chưa cấu hình, bỏ qua thông báo đơn hàng")
		return
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}

	var rows strings.Builder
	for _, item := range items {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%s</td></tr>",
			item.Name, item.Quantity, utility.FormatVND(int64(item.Price)),
		))
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", from)
	mail.SetHeader("To", cfg.ContactNotifyEmail)
	mail.SetHeader("Subject", fmt.Sprintf("[Cellic] Đơn hàng mới %s", order.OrderNumber))
	mail.SetBody("text/html", fmt.Sprintf(
		"<p><b>Mã đơn:</b> %s</p><p><b>Khách hàng:</b> %s - %s</p><p><b>Địa chỉ:</b> %s, %s, %s, %s</p>"+
			"<table border=\"1\" cellpadding=\"4\"><tr><th>Sản phẩm</th><th>SL</th><th>Đơn giá</th></tr>%s</table>"+
			"<p><b>Tổng cộng:</b> %s</p>",
		order.OrderNumber, order.CustomerName, order.CustomerPhone,
		order.Street, order.Ward, order.District, order.Province,
		rows.String(), utility.FormatVND(int64(order.Total)),
	))

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := dialer.DialAndSend(mail); err != nil {
		logrus.WithFields(logrus.Fields{"order_number": order.OrderNumber, "error": err.Error()}).Warn("sendOrderNotification: Lỗi gửi email thông báo đơn hàng")
		return
	}

	logrus.WithFields(logrus.Fields{"order_number": order.OrderNumber, "to": cfg.ContactNotifyEmail}).Info("sendOrderNotification: Đã gửi email thông báo đơn hàng")
}
