// Package contactsvc - service tin nhắn liên hệ và thông báo email.
package contactsvc

import (
	"context"
	"fmt"

	basesvc "cellic_store/internal/api/base/service"
	models "cellic_store/internal/api/contact/models"
	"cellic_store/internal/common"
	"cellic_store/internal/global"
	"cellic_store/internal/utility"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// ContactService là cấu trúc chứa các phương thức liên quan đến tin nhắn liên hệ
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[models.ContactMessage]
}

// NewContactService tạo mới ContactService
func NewContactService() (*ContactService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("failed to get contacts collection: %v", common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ContactMessage](collection),
	}, nil
}

// InsertOne lưu tin nhắn liên hệ với trạng thái mặc định unread
func (s *ContactService) InsertOne(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	if message.Status == "" {
		message.Status = models.ContactStatusUnread
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, message)
}

// SubmitContact lưu tin nhắn từ form liên hệ và gửi email thông báo
// fire-and-forget: lỗi gửi mail chỉ được log, không bao giờ fail request.
func (s *ContactService) SubmitContact(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	saved, err := s.InsertOne(ctx, message)
	if err != nil {
		return models.ContactMessage{}, err
	}

	go utility.GoProtect(func() {
		s.sendNotification(&saved)
	})

	return saved, nil
}

// sendNotification gửi email thông báo có liên hệ mới đến admin.
// Tắt khi SMTP hoặc CONTACT_NOTIFY_EMAIL chưa được cấu hình.
func (s *ContactService) sendNotification(message *models.ContactMessage) {
	cfg := global.ServerConfig
	if cfg == nil || cfg.SMTPHost == "" || cfg.ContactNotifyEmail == "" {
		logrus.Debug("sendNotification: SMTP chưa cấu hình, bỏ qua thông báo liên hệ")
		return
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", from)
	mail.SetHeader("To", cfg.ContactNotifyEmail)
	mail.SetHeader("Subject", fmt.Sprintf("[Cellic] Liên hệ mới: %s", message.Subject))
	mail.SetBody("text/html", fmt.Sprintf(
		"<p><b>Họ tên:</b> %s</p><p><b>Email:</b> %s</p><p><b>Tiêu đề:</b> %s</p><p><b>Nội dung:</b></p><p>%s</p>",
		message.Name, message.Email, message.Subject, message.Message,
	))

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := dialer.DialAndSend(mail); err != nil {
		logrus.WithFields(logrus.Fields{"contact_id": message.ID.Hex(), "error": err.Error()}).Warn("sendNotification: Lỗi gửi email thông báo liên hệ")
		return
	}

	logrus.WithFields(logrus.Fields{"contact_id": message.ID.Hex(), "to": cfg.ContactNotifyEmail}).Info("sendNotification: Đã gửi email thông báo liên hệ")
}
