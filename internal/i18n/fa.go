package i18n

var fa = map[Key]string{
	Start:            "خوش آمدید! من فایل‌ها، عکس‌ها و یادداشت‌های شما را در پوشه‌هایی که می‌توانند رمزدار باشند نگه می‌دارم.\nاز منوی زیر استفاده کنید یا /help را بفرستید.",
	Help:             "دستورات:\n/CrFolders - ساخت پوشه\n/OpenFolder - باز کردن پوشه\n/ListFolders - فهرست پوشه‌ها\n/SearchFolders - جستجوی پوشه‌ها\n/AddFiles - افزودن فایل به پوشه\n/EditFolder - ویرایش پوشه\n/DeleteFile - حذف فایل از پوشه\n/DeleteFolder - حذف پوشه\n/DownloadYouTube - دانلود ویدیو از یوتیوب\n/Lang - تغییر زبان\n\nدر هر مرحله می‌توانید لغو، بازگشت یا راهنما را بزنید.",
	GenericError:     "خطایی رخ داد. لطفاً بعداً دوباره تلاش کنید.",
	Cancelled:        "عملیات لغو شد.",
	TryOtherCommands: "اکنون می‌توانید از دستورات دیگر استفاده کنید.",
	UnknownCommand:   "دستور ناشناخته است. برای دیدن دستورات /help را بفرستید.",
	UseCommands:      "لطفاً یکی از دستورات منو را انتخاب کنید یا /help را بفرستید.",
	LangSwitched:     "زبان به فارسی تغییر کرد.",
	NoPreviousStep:   "شما در اولین مرحله هستید.",
	InvalidChoice:    "لطفاً یکی از گزینه‌ها را انتخاب کنید.",
	AccessDenied:     "شما به این پوشه دسترسی ندارید.",

	BtnCancel:     "❌ لغو",
	BtnBack:       "🔙 بازگشت",
	BtnHelp:       "❓ راهنما",
	BtnSkip:       "⏭ رد شدن",
	BtnYes:        "بله",
	BtnNo:         "خیر",
	BtnDone:       "آپلود تمام شد.",
	BtnConfirm:    "✅ حذف",
	BtnDetails:    "ℹ️ جزئیات",
	BtnAdd:        "➕ افزودن",
	BtnShare:      "🔗 اشتراک",
	BtnDelete:     "🗑 حذف",
	BtnEdit:       "✏️ ویرایش",
	BtnDeleteFile: "🗑 حذف فایل",
	BtnPrev:       "⬅️ قبلی",
	BtnNext:       "بعدی ➡️",
	BtnSendHere:   "📤 ارسال در تلگرام",
	BtnKeep:       "📁 نگه‌داری در پوشه",

	EnterFolderName:    "نام پوشه را وارد کنید (حروف، اعداد، _، - و فاصله، حداکثر ۲۵۵ کاراکتر):",
	InvalidFolderName:  "نام پوشه نامعتبر است. فقط از حروف، اعداد، _، - و فاصله استفاده کنید (حداکثر ۲۵۵ کاراکتر):",
	FolderExists:       "پوشه‌ای با این نام وجود دارد. لطفاً نام دیگری انتخاب کنید:",
	SendFiles:          "اکنون فایل‌ها یا متن‌هایی را که می‌خواهید ذخیره شوند بفرستید. در پایان «آپلود تمام شد.» را بزنید.",
	FileReceived:       "دریافت شد (تا کنون %d مورد). موارد بیشتری بفرستید یا «آپلود تمام شد.» را بزنید.",
	TextTooLong:        "متن خیلی طولانی است (حداکثر %d کاراکتر).",
	FileTooLarge:       "حجم فایل خیلی زیاد است (حداکثر %d مگابایت).",
	NoFiles:            "ابتدا حداقل یک فایل یا متن بفرستید.",
	EnterDescription:   "توضیحات پوشه را وارد کنید یا «رد شدن» را بزنید:",
	DescriptionTooLong: "توضیحات خیلی طولانی است (حداکثر %d کاراکتر).",
	EnterTags:          "تگ‌ها را با کاما جدا کنید یا «رد شدن» را بزنید:",
	TagsTooLong:        "تگ‌ها خیلی طولانی هستند (حداکثر %d کاراکتر).",
	AskPassword:        "آیا می‌خواهید برای این پوشه رمز بگذارید؟",
	EnterNewPassword:   "رمز عبور را وارد کنید (حداقل %d کاراکتر):",
	PasswordTooShort:   "رمز عبور باید حداقل %d کاراکتر باشد.",
	AskCover:           "یک عکس برای کاور پوشه بفرستید یا «رد شدن» را بزنید:",
	CoverMustBePhoto:   "کاور باید عکس باشد. یک عکس بفرستید یا «رد شدن» را بزنید.",
	Saving:             "در حال ذخیره، لطفاً صبر کنید...",
	FolderCreated:      "پوشه «%s» با %d مورد ساخته شد.",

	EnterFolderToOpen: "نام پوشه‌ای که می‌خواهید باز کنید را وارد کنید:",
	FolderNotFound:    "پوشه پیدا نشد. نام را بررسی کنید و دوباره تلاش کنید:",
	EnterPassword:     "این پوشه رمزدار است. رمز عبور را وارد کنید:",
	WrongPassword:     "رمز عبور اشتباه است. دوباره تلاش کنید یا «لغو» را بزنید:",
	FolderEmpty:       "این پوشه خالی است.",
	LabelDescription:  "توضیحات",
	LabelTags:         "تگ‌ها",
	LabelCreated:      "تاریخ ساخت",
	LabelProtected:    "رمزدار",
	FileUnavailable:   "یک فایل هنوز در حال دانلود است یا پیدا نشد.",

	NoFolders:         "هنوز پوشه‌ای ندارید. با /CrFolders یک پوشه بسازید.",
	FolderListTitle:   "پوشه‌های شما (صفحه %d از %d):",
	EnterSearch:       "کلمه‌ای برای جستجو در نام، توضیحات، تگ‌ها و یادداشت‌ها وارد کنید:",
	NoResults:         "هیچ پوشه‌ای با «%s» پیدا نشد. کلمه دیگری امتحان کنید یا «لغو» را بزنید.",
	SearchResultTitle: "نتایج «%s» (صفحه %d از %d):",
	SearchExpired:     "این جستجو منقضی شده است. با /SearchFolders دوباره جستجو کنید.",

	EnterFolderToAdd: "نام پوشه‌ای که می‌خواهید به آن فایل اضافه کنید را وارد کنید:",
	FilesAdded:       "%d مورد به «%s» اضافه شد.",

	EnterFolderToEdit:     "نام پوشه‌ای که می‌خواهید ویرایش کنید را وارد کنید:",
	ChooseField:           "چه چیزی را می‌خواهید تغییر دهید؟",
	FieldName:             "نام",
	FieldDescription:      "توضیحات",
	FieldTags:             "تگ‌ها",
	FieldPassword:         "رمز عبور",
	FieldCover:            "عکس کاور",
	EnterNewName:          "نام جدید پوشه را وارد کنید:",
	EnterNewDescription:   "توضیحات جدید را وارد کنید:",
	EnterNewTags:          "تگ‌های جدید را با کاما جدا کنید:",
	EnterPasswordOrRemove: "رمز جدید را وارد کنید (حداقل %d کاراکتر) یا برای حذف رمز «رد شدن» را بزنید:",
	SendNewCover:          "عکس کاور جدید را بفرستید:",
	FolderUpdated:         "پوشه به‌روزرسانی شد.",
	PasswordRemoved:       "رمز عبور حذف شد.",

	EnterFolderDeleteFile: "نام پوشه‌ای که می‌خواهید از آن فایل حذف کنید را وارد کنید:",
	ChooseFileToDelete:    "فایلی را که می‌خواهید حذف شود انتخاب کنید:",
	FileDeleted:           "فایل حذف شد.",
	FileNotFound:          "فایل پیدا نشد.",

	EnterFolderToDelete: "نام پوشه‌ای که می‌خواهید حذف کنید را وارد کنید:",
	ConfirmDelete:       "پوشه «%s» و همه فایل‌هایش حذف شود؟ این کار قابل بازگشت نیست.",
	FolderDeleted:       "پوشه «%s» حذف شد.",

	EnterYouTubeURL:   "لینک یوتیوب را بفرستید:",
	InvalidYouTubeURL: "این لینک یوتیوب نیست. لینکی مانند https://www.youtube.com/watch?v=... بفرستید.",
	ChooseQuality:     "کیفیت ویدیو را انتخاب کنید:",
	InvalidQuality:    "لطفاً یکی از کیفیت‌های فهرست را انتخاب کنید.",
	Downloading:       "در حال دانلود ویدیو، ممکن است کمی طول بکشد...",
	DownloadFailed:    "دانلود این ویدیو ممکن نشد.",
	VideoSaved:        "ویدیو در پوشه «%s» ذخیره شد. چه کاری می‌خواهید انجام دهید؟",
	UploadingLink:     "حجم ویدیو بیشتر از %d مگابایت است، در حال آپلود در سرویس اشتراک فایل...",
	VideoLink:         "ویدیو برای تلگرام خیلی بزرگ است. از این لینک دانلود کنید (لینک موقت است): %s",
	VideoKept:         "ویدیو در پوشه «%s» باقی می‌ماند.",
	ChoiceExpired:     "این گزینه منقضی شده است.",
}
